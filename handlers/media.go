package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner, gallery and video endpoints share one shape: a document with a
// single URL field. The per-entity methods below bind the right store and
// field name.

func (h *Handler) CreateBanner(c *gin.Context) { h.createMedia(c, h.Banners, "Banner", "bannerImage") }
func (h *Handler) ListBanners(c *gin.Context)  { h.listMedia(c, h.Banners, "Banner") }
func (h *Handler) DeleteBanner(c *gin.Context) { h.deleteMedia(c, h.Banners, "Banner") }

func (h *Handler) CreateGallery(c *gin.Context) {
	h.createMedia(c, h.Galleries, "Gallery", "galleryImage")
}
func (h *Handler) ListGalleries(c *gin.Context) { h.listMedia(c, h.Galleries, "Gallery") }
func (h *Handler) DeleteGallery(c *gin.Context) { h.deleteMedia(c, h.Galleries, "Gallery") }

func (h *Handler) CreateVideo(c *gin.Context) { h.createMedia(c, h.Videos, "Video", "videos") }
func (h *Handler) ListVideos(c *gin.Context)  { h.listMedia(c, h.Videos, "Video") }
func (h *Handler) DeleteVideo(c *gin.Context) { h.deleteMedia(c, h.Videos, "Video") }

func (h *Handler) createMedia(c *gin.Context, s MediaStore, entity, field string) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	url, _ := body[field].(string)
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return
	}

	id, err := s.Create(c.Request.Context(), url)
	if err != nil {
		h.fail(c, err, entity)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": entity + " saved successfully", "insertedId": id})
}

func (h *Handler) listMedia(c *gin.Context, s MediaStore, entity string) {
	items, err := s.All(c.Request.Context())
	if err != nil {
		h.fail(c, err, entity)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) deleteMedia(c *gin.Context, s MediaStore, entity string) {
	if err := s.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, entity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted successfully"})
}
