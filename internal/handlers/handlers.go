// Package handlers wires the HTTP routes to the stores and views.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
	"tradeboard/internal/store"
	"tradeboard/internal/upload"
)

const sessionUserKey = "username"

// ViewData is the bag of values handed to a template.
type ViewData map[string]any

type Handler struct {
	products *store.Products
	posts    *store.Posts
	users    *store.Users
	uploads  *upload.Store
}

func New(gdb *gorm.DB, uploads *upload.Store) *Handler {
	return &Handler{
		products: store.NewProducts(gdb),
		posts:    store.NewPosts(gdb),
		users:    store.NewUsers(gdb),
		uploads:  uploads,
	}
}

// Routes registers every route on r.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)

	r.GET("/products", h.ListProducts)
	r.GET("/products/search", h.SearchProducts)
	r.GET("/products/add", h.AddProductForm)
	r.POST("/products/add", h.AddProduct)
	r.GET("/productDetail/:id", h.ProductDetail)
	r.GET("/products/edit/:id", h.mustLogin, h.EditProductForm)
	r.POST("/products/edit/:id", h.mustLogin, h.EditProduct)
	r.POST("/products/delete/:id", h.mustLogin, h.DeleteProduct)
	r.POST("/products/deleteAll", h.DeleteAllProducts)

	r.GET("/posts", h.ListPosts)
	r.GET("/posts/search", h.SearchPosts)
	r.GET("/posts/add", h.AddPostForm)
	r.POST("/posts/add", h.AddPost)
	r.GET("/postDetail/:id", h.PostDetail)
	r.GET("/posts/edit/:id", h.mustLogin, h.EditPostForm)
	r.POST("/posts/edit/:id", h.mustLogin, h.EditPost)
	r.POST("/posts/delete/:id", h.mustLogin, h.DeletePost)
	r.POST("/posts/deleteAll", h.DeleteAllPosts)
}

// currentUser returns the session's username, "" for guests.
func currentUser(c *gin.Context) string {
	sess := sessions.Default(c)
	if v := sess.Get(sessionUserKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func isAdmin(c *gin.Context) bool {
	return currentUser(c) == models.AdminUsername
}

// canMutate is the owner-or-admin gate, checked against the author value
// stored on the row, never against anything client-supplied.
func canMutate(c *gin.Context, author string) bool {
	u := currentUser(c)
	return u != "" && (u == author || u == models.AdminUsername)
}

// mustLogin redirects guests to the login page.
func (h *Handler) mustLogin(c *gin.Context) {
	if currentUser(c) == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

// withUser threads the session identity into view data.
func withUser(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	if u := currentUser(c); u != "" {
		data["Username"] = u
	}
	return data
}

// fail renders an error as its HTTP status with a generic message.
func (h *Handler) fail(c *gin.Context, err error) {
	e := httperr.From(err)
	c.String(e.Status(), e.Message)
}

// paramID parses the :id route parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// authorOrGuest is the author recorded on newly created records.
func authorOrGuest(c *gin.Context) string {
	if u := currentUser(c); u != "" {
		return u
	}
	return models.GuestAuthor
}
