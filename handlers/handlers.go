package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/models"
	"github.com/sweetpencilbd/api/store"
)

// Store interfaces consumed by the handlers. The concrete implementations
// live in the store package; tests substitute in-memory versions.

type ProductStore interface {
	Create(ctx context.Context, doc map[string]any) (string, error)
	All(ctx context.Context) ([]map[string]any, error)
	ByCategory(ctx context.Context, category string) ([]map[string]any, error)
	Page(ctx context.Context, category string, page store.Page) ([]map[string]any, int64, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	EstimatedCount(ctx context.Context) (int64, error)
}

type OrderStore interface {
	Create(ctx context.Context, o models.Order) (string, error)
	Page(ctx context.Context, status string, page store.Page) ([]models.Order, int64, error)
	Delete(ctx context.Context, id string) error
}

type CustomerStore interface {
	Upsert(ctx context.Context, c models.Customer) (string, bool, error)
	All(ctx context.Context) ([]models.Customer, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	ByEmail(ctx context.Context, email string) (models.User, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type MediaStore interface {
	Create(ctx context.Context, url string) (string, error)
	All(ctx context.Context) ([]map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Products  ProductStore
	Orders    OrderStore
	Customers CustomerStore
	Users     UserStore
	Banners   MediaStore
	Galleries MediaStore
	Videos    MediaStore
}

func New(s *store.Store) *Handler {
	return &Handler{
		Products:  s.Products,
		Orders:    s.Orders,
		Customers: s.Customers,
		Users:     s.Users,
		Banners:   s.Banners,
		Galleries: s.Galleries,
		Videos:    s.Videos,
	}
}

// fail maps a store error to a response. Unexpected errors are logged
// with full detail server-side; the client only ever sees a stable
// message.
func (h *Handler) fail(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
	case errors.Is(err, store.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	default:
		slog.Error("store operation failed",
			"entity", entity,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestID(c),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
