package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardCounts returns estimated user and product counts. Estimates
// are fine here: the dashboard only needs order-of-magnitude numbers and
// the estimated count avoids a collection scan.
func (h *Handler) DashboardCounts(c *gin.Context) {
	users, err := h.Users.EstimatedCount(c.Request.Context())
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	products, err := h.Products.EstimatedCount(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "products": products})
}
