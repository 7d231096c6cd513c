package handlers // Admin API: registry, resolution preview, journal, debug log.

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmleach/frock/core"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/repositories"
	"github.com/dmleach/frock/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler bundles the dependencies of the protected admin endpoints.
type AdminHandler struct {
	svc services.DispatchService
}

// NewAdminHandler constructs the admin handler.
func NewAdminHandler(svc services.DispatchService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Classes handles GET /admin/classes.
func (h *AdminHandler) Classes(c *gin.Context) {
	names := h.svc.Classes()
	c.JSON(http.StatusOK, gin.H{"classes": names, "count": len(names)})
}

// Resolve handles GET /admin/resolve/:role/*path.
func (h *AdminHandler) Resolve(c *gin.Context) {
	role := models.Role(c.Param("role"))
	res, err := h.svc.Resolve(role, core.NormalizePath(c.Param("path")))
	if err != nil {
		if errors.Is(err, services.ErrUnknownRole) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListDispatches handles GET /admin/dispatches?page=1&limit=10.
func (h *AdminHandler) ListDispatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	paged, err := h.svc.ListDispatches(page, limit) // service clamps page/limit
	if err != nil {
		c.JSON(journalStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, paged)
}

// GetDispatch handles GET /admin/dispatches/:id.
func (h *AdminHandler) GetDispatch(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	d, err := h.svc.GetDispatch(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dispatch not found"})
			return
		}
		c.JSON(journalStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// DebugLog handles GET /admin/debug-log?limit=100.
func (h *AdminHandler) DebugLog(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	entries, err := h.svc.DebugLog(limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()}) // Redis unreachable
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func journalStatus(err error) int {
	if errors.Is(err, services.ErrJournalDisabled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
