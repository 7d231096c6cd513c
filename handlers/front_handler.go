// Front controller: every page request funnels through Dispatch.

package handlers

import (
	"errors"
	"net/http"

	"github.com/dmleach/frock/core"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"

	"github.com/gin-gonic/gin"
)

// ContextBinder is implemented by classes that need the Gin request/response.
// Frock hands them the context after construction and before Execute.
type ContextBinder interface {
	BindContext(c *gin.Context)
}

// FrontHandler turns HTTP requests into dispatches for one role.
type FrontHandler struct {
	svc     services.DispatchService
	role    models.Role
	pathKey any // same key the dispatcher reads, used for URL rewrites
}

// NewFrontHandler constructs a front controller handler for role.
func NewFrontHandler(svc services.DispatchService, role models.Role, pathKey any) *FrontHandler {
	return &FrontHandler{svc: svc, role: role, pathKey: pathKey}
}

// Dispatch handles `/?path=...`, routes with a `*path` param, and, mounted as
// NoRoute, any unmatched URL. A rewritten URL path only applies when the
// request does not already carry the path key.
func (h *FrontHandler) Dispatch(c *gin.Context) {
	req := h.request(c)

	_, err := h.svc.Dispatch(h.role, req, func(obj services.Class) {
		if b, ok := obj.(ContextBinder); ok {
			b.BindContext(c)
		}
	})
	if err != nil {
		switch {
		case services.IsClassNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if !c.Writer.Written() { // class ran but produced no output
		c.Status(http.StatusNoContent)
	}
}

// request collects query and form values (form wins, like a GP request order).
func (h *FrontHandler) request(c *gin.Context) models.Request {
	req := models.RequestFromValues(c.Request.URL.Query())
	if err := c.Request.ParseForm(); err == nil {
		for k, v := range models.RequestFromValues(c.Request.PostForm) {
			req[k] = v
		}
	}
	if _, ok := req.Lookup(h.pathKey); ok {
		return req
	}
	raw := c.Param("path")
	if c.FullPath() == "" { // unmatched route -> rewrite the whole URL path
		raw = c.Request.URL.Path
	}
	if p := core.NormalizePath(raw); p != "" {
		req[h.pathKey] = p
	}
	return req
}
