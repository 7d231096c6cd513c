package app

import (
	"net/http"
	"time"

	"github.com/dmleach/frock/global"

	"github.com/gin-gonic/gin"
)

// base keeps the bound request context for classes that answer over HTTP.
type base struct {
	c *gin.Context
}

func (b *base) BindContext(c *gin.Context) { b.c = c }

// HelloController answers the default path.
type HelloController struct{ base }

func (h *HelloController) Execute() {
	if h.c == nil {
		return
	}
	m := &GreetingModel{Name: h.c.Query("name")}
	m.Execute()
	h.c.JSON(http.StatusOK, gin.H{"message": m.Text})
}

// StatusController reports the running version.
type StatusController struct{ base }

func (s *StatusController) Execute() {
	if s.c == nil {
		return
	}
	s.c.JSON(http.StatusOK, gin.H{
		"version": global.AppVersion,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// UserListController lists the demo users.
type UserListController struct{ base }

func (u *UserListController) Execute() {
	if u.c == nil {
		return
	}
	m := &UserModel{}
	m.Execute()
	u.c.JSON(http.StatusOK, gin.H{"items": m.Users, "total": len(m.Users)})
}
