package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmleach/frock/mocks"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAdmin(svc *mocks.DispatchServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdminHandler(svc)
	r.GET("/classes", h.Classes)
	r.GET("/resolve/:role/*path", h.Resolve)
	r.GET("/dispatches", h.ListDispatches)
	r.GET("/dispatches/:id", h.GetDispatch)
	r.GET("/debug-log", h.DebugLog)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestAdmin_Classes(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("Classes").Return([]string{`App\controller\Hello`})

	w := get(setupAdmin(svc), "/classes")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestAdmin_Resolve(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("Resolve", models.RoleView, "user/list").Return(&models.ResolveResponse{
		Role: models.RoleView, Path: "user/list", ClassName: `App\view\user\List`, Registered: true,
	}, nil)

	w := get(setupAdmin(svc), "/resolve/view/user/list")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":true`)
}

func TestAdmin_Resolve_UnknownRole(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("Resolve", models.Role("service"), "x").Return(nil, services.ErrUnknownRole)

	w := get(setupAdmin(svc), "/resolve/service/x")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_ListDispatches(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("ListDispatches", 2, 5).Return(&models.PagedDispatches{Items: []models.Dispatch{{ID: 1}}, Total: 6, Page: 2, Limit: 5}, nil)

	w := get(setupAdmin(svc), "/dispatches?page=2&limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":6`)
}

func TestAdmin_ListDispatches_Disabled(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("ListDispatches", 1, 10).Return(nil, services.ErrJournalDisabled)

	w := get(setupAdmin(svc), "/dispatches")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdmin_GetDispatch(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("GetDispatch", uint(4)).Return(&models.Dispatch{ID: 4, RequestID: "r4"}, nil)
	svc.On("GetDispatch", uint(99)).Return(nil, gorm.ErrRecordNotFound)
	r := setupAdmin(svc)

	w := get(r, "/dispatches/4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"request_id":"r4"`)

	assert.Equal(t, http.StatusNotFound, get(r, "/dispatches/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/dispatches/abc").Code)
}

func TestAdmin_DebugLog(t *testing.T) {
	svc := new(mocks.DispatchServiceMock)
	svc.On("DebugLog", int64(5)).Return([]redislog.Entry{{Level: "debug", Msg: "PathKey()"}}, nil)

	w := get(setupAdmin(svc), "/debug-log?limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `PathKey()`)
}
