package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/models"
	"tradeboard/internal/store"
)

type productForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"gte=0"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	pg, err := h.products.Search(c.Query("query"), store.NormalizePage(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderProducts(c, pg)
}

// SearchProducts serves the search box. Same view and the same full-count
// pagination as the list route, pinned to the first page.
func (h *Handler) SearchProducts(c *gin.Context) {
	pg, err := h.products.Search(c.Query("query"), 1)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderProducts(c, pg)
}

func (h *Handler) renderProducts(c *gin.Context, pg store.Page[models.Product]) {
	c.HTML(http.StatusOK, "products.tmpl", withUser(c, ViewData{
		"Items":      pg.Items,
		"Query":      pg.Query,
		"Page":       pg.Page,
		"TotalPages": pg.TotalPages,
	}))
}

func (h *Handler) AddProductForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_form.tmpl", withUser(c, ViewData{"Mode": "create"}))
}

func (h *Handler) AddProduct(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", withUser(c, ViewData{
			"Mode": "create", "Error": "Name is required and price must not be negative",
		}))
		return
	}
	p := models.Product{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Author:      authorOrGuest(c),
	}
	if err := h.products.Create(&p); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

func (h *Handler) ProductDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	p, err := h.products.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "product_detail.tmpl", withUser(c, ViewData{"Item": p}))
}

func (h *Handler) EditProductForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	p, err := h.products.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not edit this product")
		return
	}
	c.HTML(http.StatusOK, "product_form.tmpl", withUser(c, ViewData{"Mode": "edit", "Item": p}))
}

func (h *Handler) EditProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	// re-fetch so the ownership check runs against the stored author
	p, err := h.products.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not edit this product")
		return
	}
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", withUser(c, ViewData{
			"Mode": "edit", "Item": p, "Error": "Name is required and price must not be negative",
		}))
		return
	}
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
	if err := h.products.Update(p); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	p, err := h.products.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not delete this product")
		return
	}
	if err := h.products.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

func (h *Handler) DeleteAllProducts(c *gin.Context) {
	if !isAdmin(c) {
		c.String(http.StatusForbidden, "admin privileges required")
		return
	}
	if err := h.products.Reset(); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}
