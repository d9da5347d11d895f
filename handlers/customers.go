package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/models"
)

type addCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// AddCustomer upserts a customer keyed on (name, mobile): an existing
// pair is updated in place, a new pair is inserted.
func (h *Handler) AddCustomer(c *gin.Context) {
	var req addCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Address: req.Address,
		Email:   req.Email,
	}

	id, created, err := h.Customers.Upsert(c.Request.Context(), customer)
	if err != nil {
		h.fail(c, err, "Customer")
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Customer added successfully", "insertedId": id})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully", "id": id})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.All(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	if err := h.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
