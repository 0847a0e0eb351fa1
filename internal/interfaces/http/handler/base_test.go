package handler

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

var setupValidatorOnce sync.Once

// newTestRouter builds an engine with the handlers' routes mounted the
// way the server does, with an optional pre-resolved session.
func newTestRouter(session *identity.Session, registrars ...router.RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	setupValidatorOnce.Do(middleware.SetupValidator)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.SessionKey, session)
		}
		c.Next()
	})

	r := router.NewRouter(engine)
	for _, registrar := range registrars {
		r.Register(registrar)
	}
	r.Setup()
	return engine
}

func outletAdminSession(outletID uuid.UUID) *identity.Session {
	return identity.NewSession("admin-1", "outlet_admin", &outletID)
}

func superAdminSession() *identity.Session {
	return identity.NewSession("super-1", "super_admin", nil)
}

func TestBaseHandler_HandleError_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "ERR_NOT_FOUND"},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized, "ERR_UNAUTHORIZED"},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, "ERR_FORBIDDEN"},
		{"bad request", shared.NewDomainError("BAD_REQUEST", "Outlet id is required"), http.StatusBadRequest, "ERR_BAD_REQUEST"},
		{"domain validation", shared.NewDomainError("INVALID_PRICE", "bad price"), http.StatusBadRequest, "ERR_VALIDATION"},
		{"unknown error is internal", assert.AnError, http.StatusInternalServerError, "ERR_INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			engine := gin.New()
			h := &BaseHandler{}
			engine.GET("/boom", func(c *gin.Context) {
				h.HandleError(c, tt.err)
			})

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestBaseHandler_ErrorCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestID())
	h := &BaseHandler{}
	engine.GET("/missing", func(c *gin.Context) {
		h.NotFound(c, "Menu item not found")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("X-Request-ID", "req-777")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"requestId":"req-777"`)
}
