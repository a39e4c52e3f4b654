package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(sessions session.Store, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(SessionMiddleware(sessions, SessionOptions{MaxAge: time.Hour}))
	handlers := append(extra, func(c *gin.Context) {
		sess := CurrentSession(c)
		c.JSON(http.StatusOK, gin.H{
			"id":         sess.ID,
			"_id":        sess.UserID,
			"request_id": logger.GetRequestID(c.Request.Context()),
		})
	})
	r.GET("/", handlers...)
	return r
}

func TestSessionMiddleware_CreatesSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	r := newRouter(sessions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(SessionHeader)
	require.NotEmpty(t, sid)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	_, err := sessions.Get(context.Background(), sid)
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, contextkeys.SessionCookieName, cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesSessionFromCookie(t *testing.T) {
	sessions := session.NewMemoryStore()
	existing := session.New("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	existing.SignIn("tok", "", "s1", models.UserRoleJobSeeker, nil)
	require.NoError(t, sessions.Save(context.Background(), existing))
	r := newRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: contextkeys.SessionCookieName, Value: existing.ID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, existing.ID, w.Header().Get(SessionHeader))
	assert.Contains(t, w.Body.String(), `"_id":"s1"`)
}

func TestSessionMiddleware_IgnoresMalformedID(t *testing.T) {
	sessions := session.NewMemoryStore()
	r := newRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "../../etc/passwd")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	sid := w.Header().Get(SessionHeader)
	assert.NotEqual(t, "../../etc/passwd", sid)
	assert.NotEmpty(t, sid)
}

func TestSessionMiddleware_SignsOutExpiredToken(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	sessions := session.NewMemoryStore()
	existing := session.New("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	existing.SignIn(tok, "", "s1", models.UserRoleJobSeeker, nil)
	require.NoError(t, sessions.Save(context.Background(), existing))
	r := newRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, existing.ID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"_id":""`)
	stored, err := sessions.Get(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AccessToken)
}

func TestRequireRole(t *testing.T) {
	sessions := session.NewMemoryStore()
	company := session.New("9a1f2c44-1b8e-4a55-9d6c-2f7a3e1b0c11")
	company.SignIn("tok", "", "c1", models.UserRoleCompany, nil)
	require.NoError(t, sessions.Save(context.Background(), company))

	r := newRouter(sessions, RequireRole(models.UserRoleJobSeeker))

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(SessionHeader, company.ID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := newRouter(session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"request_id":"req-42"`)
}

func TestSessionMiddleware_ActiveSessionSurvivesCleanup(t *testing.T) {
	sessions := session.NewMemoryStore()
	existing := session.New("2c9d6b1e-7a43-4f0e-b8a5-91d3c6e2f407")
	existing.SignIn("tok", "", "s1", models.UserRoleJobSeeker, nil)
	existing.UpdatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, sessions.Save(context.Background(), existing))
	r := newRouter(sessions)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(SessionHeader, existing.ID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	stored, err := sessions.Get(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), stored.UpdatedAt, time.Minute)

	removed, err := sessions.CleanExpired(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSessionMiddleware_TouchIsThrottled(t *testing.T) {
	sessions := session.NewMemoryStore()
	existing := session.New("5e1f0a7c-3b2d-4c69-8e14-a0b7d9c2f316")
	recent := time.Now().Add(-10 * time.Second).UTC()
	existing.UpdatedAt = recent
	require.NoError(t, sessions.Save(context.Background(), existing))
	r := newRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, existing.ID)
	r.ServeHTTP(httptest.NewRecorder(), req)

	stored, err := sessions.Get(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.True(t, recent.Equal(stored.UpdatedAt))
}
