package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/models"
	"tradeboard/internal/store"
)

type postForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

func (h *Handler) ListPosts(c *gin.Context) {
	pg, err := h.posts.Search(c.Query("query"), store.NormalizePage(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderPosts(c, pg)
}

func (h *Handler) SearchPosts(c *gin.Context) {
	pg, err := h.posts.Search(c.Query("query"), 1)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderPosts(c, pg)
}

func (h *Handler) renderPosts(c *gin.Context, pg store.Page[models.Post]) {
	c.HTML(http.StatusOK, "posts.tmpl", withUser(c, ViewData{
		"Items":      pg.Items,
		"Query":      pg.Query,
		"Page":       pg.Page,
		"TotalPages": pg.TotalPages,
	}))
}

func (h *Handler) AddPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "post_form.tmpl", withUser(c, ViewData{"Mode": "create"}))
}

func (h *Handler) AddPost(c *gin.Context) {
	var f postForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "post_form.tmpl", withUser(c, ViewData{
			"Mode": "create", "Error": "Title and content are required",
		}))
		return
	}
	path, err := h.uploads.Save(c, "file")
	if err != nil {
		h.fail(c, err)
		return
	}
	p := models.Post{
		Title:    f.Title,
		Content:  f.Content,
		Author:   authorOrGuest(c),
		FilePath: path,
	}
	if err := h.posts.Create(&p); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "post not found")
		return
	}
	p, err := h.posts.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", withUser(c, ViewData{"Item": p}))
}

func (h *Handler) EditPostForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "post not found")
		return
	}
	p, err := h.posts.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not edit this post")
		return
	}
	c.HTML(http.StatusOK, "post_form.tmpl", withUser(c, ViewData{"Mode": "edit", "Item": p}))
}

func (h *Handler) EditPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "post not found")
		return
	}
	p, err := h.posts.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not edit this post")
		return
	}
	var f postForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "post_form.tmpl", withUser(c, ViewData{
			"Mode": "edit", "Item": p, "Error": "Title and content are required",
		}))
		return
	}
	path, err := h.uploads.Save(c, "file")
	if err != nil {
		h.fail(c, err)
		return
	}
	p.Title = f.Title
	p.Content = f.Content
	if path != "" {
		// attachment is sticky: keep the old file unless replaced
		p.FilePath = path
	}
	if err := h.posts.Update(p); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/postDetail/%d", p.ID))
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "post not found")
		return
	}
	p, err := h.posts.ByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !canMutate(c, p.Author) {
		c.String(http.StatusForbidden, "you may not delete this post")
		return
	}
	if err := h.posts.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *Handler) DeleteAllPosts(c *gin.Context) {
	if !isAdmin(c) {
		c.String(http.StatusForbidden, "admin privileges required")
		return
	}
	if err := h.posts.Reset(); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts")
}
