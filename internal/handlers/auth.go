package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
)

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", withUser(c, nil))
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withUser(c, nil))
}

func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	u, err := h.users.ByUsername(username)
	if err != nil && !httperr.IsNotFound(err) {
		h.fail(c, err)
		return
	}
	if u == nil || !models.CheckPassword(u.PasswordHash, password) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withUser(c, ViewData{"Error": "Wrong username or password"}))
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUserKey, u.Username)
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", withUser(c, nil))
}

func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirmPassword")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}
	if password != confirm {
		c.HTML(http.StatusBadRequest, "register.tmpl", withUser(c, ViewData{"Error": "Passwords do not match"}))
		return
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		h.fail(c, httperr.NewStorage("could not hash password", err))
		return
	}
	u := models.User{Username: username, PasswordHash: hash}
	if err := h.users.Create(&u); err != nil {
		if httperr.IsConflict(err) {
			c.HTML(http.StatusBadRequest, "register.tmpl", withUser(c, ViewData{"Error": "Username already exists"}))
			return
		}
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
