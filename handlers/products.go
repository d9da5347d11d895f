package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/store"
)

var productSchema = Schema{
	{Name: "name", Kind: KindString, Required: true},
	{Name: "category", Kind: KindString, Required: true},
	{Name: "price", Kind: KindNumber, Required: true},
	{Name: "quantity", Kind: KindNumber, Required: true},
	{Name: "image", Kind: KindString},
}

// AddProduct creates a product. The body is a document: the core fields
// are schema-checked, anything extra is stored as-is.
func (h *Handler) AddProduct(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := productSchema.Validate(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Products.Create(c.Request.Context(), doc)
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "insertedId": id})
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.All(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// ProductsReport lists products for one category, or all products when no
// category is given.
func (h *Handler) ProductsReport(c *gin.Context) {
	products, err := h.Products.ByCategory(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Stock returns one page of the optionally category-filtered product
// listing plus the total count of matching products.
func (h *Handler) Stock(c *gin.Context) {
	page := store.PageFromQuery(c.Query("page"), c.Query("limit"), 3)
	products, total, err := h.Products.Page(c.Request.Context(), c.Query("category"), page)
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "totalCount": total})
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct applies a partial field-set update. The _id is stripped
// in the store layer so a product's identity can never change.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Products.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// UpdateProductStock adjusts the stock quantity and nothing else.
func (h *Handler) UpdateProductStock(c *gin.Context) {
	var req struct {
		Quantity *float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]any{"quantity": *req.Quantity}
	if err := h.Products.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product stock updated successfully"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
