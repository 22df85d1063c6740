package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olaria/storefront/internal/session/domain"
	"github.com/olaria/storefront/internal/session/infrastructure/persistence/memory"
)

func newRouter(store domain.Store) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Resolve(store, Config{CookieName: "session_id", TTL: time.Hour}))
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = SessionID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

func TestResolveCreatesSessionOnFirstRequest(t *testing.T) {
	store := memory.NewSessionStore()
	r, seen := newRouter(store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, *seen)
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "first request must set the session cookie")
	assert.Equal(t, *seen, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	stored, err := store.Get(context.Background(), *seen)
	require.NoError(t, err)
	require.NotNil(t, stored, "session must be persisted server-side")
}

func TestResolveReusesExistingSession(t *testing.T) {
	store := memory.NewSessionStore()
	r, seen := newRouter(store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := *seen
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, first, *seen, "a known cookie keeps its session id")
	assert.Nil(t, sessionCookie(t, rec), "no new cookie for an existing session")
}

func TestResolveRejectsUnknownCookie(t *testing.T) {
	store := memory.NewSessionStore()
	r, seen := newRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "forged-or-expired"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.NotEmpty(t, *seen)
	assert.NotEqual(t, "forged-or-expired", *seen, "unknown ids are replaced, not adopted")
	require.NotNil(t, sessionCookie(t, rec))
}

func TestResolveDistinctBrowsersGetDistinctSessions(t *testing.T) {
	store := memory.NewSessionStore()
	r, seen := newRouter(store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := *seen

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first, *seen)
}
