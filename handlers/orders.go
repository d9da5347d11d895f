package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/models"
	"github.com/sweetpencilbd/api/store"
)

type placeOrderRequest struct {
	CustomerName string   `json:"customerName" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	ProductName  string   `json:"productName" binding:"required"`
	ProductPrice *float64 `json:"productPrice" binding:"required"`
	Quantity     *int     `json:"quantity" binding:"required"`
	CourierFee   float64  `json:"courierFee"`
	TotalCost    *float64 `json:"totalCost" binding:"required"`
}

// PlaceOrder creates an order. Courier fee is the only optional field;
// order date and the pending status are assigned by the store.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		ProductName:  req.ProductName,
		ProductPrice: *req.ProductPrice,
		Quantity:     *req.Quantity,
		CourierFee:   req.CourierFee,
		TotalCost:    *req.TotalCost,
	}

	id, err := h.Orders.Create(c.Request.Context(), order)
	if err != nil {
		h.fail(c, err, "Order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully!", "insertedId": id})
}

// ListOrders returns one page of the optionally status-filtered order
// listing plus the total count of matching orders.
func (h *Handler) ListOrders(c *gin.Context) {
	page := store.PageFromQuery(c.Query("page"), c.Query("limit"), 10)
	orders, total, err := h.Orders.Page(c.Request.Context(), c.Query("status"), page)
	if err != nil {
		h.fail(c, err, "Order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "totalCount": total})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}
