package middleware

import (
	"context"
	"net/http"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/pkg/apperrors"
	"jobportal_front/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = contextkeys.SessionHeaderName

// DefaultTouchInterval - как часто активная сессия пишет UpdatedAt в хранилище
const DefaultTouchInterval = time.Minute

type SessionOptions struct {
	CookieName    string
	MaxAge        time.Duration
	Secure        bool
	TouchInterval time.Duration
}

// SessionMiddleware загружает сессию браузера по cookie или заголовку X-Session-ID.
// Неизвестный или отсутствующий идентификатор дает новую анонимную сессию.
// Сессия с истекшим accessToken разлогинивается.
func SessionMiddleware(sessions session.Store, opts SessionOptions) gin.HandlerFunc {
	if opts.CookieName == "" {
		opts.CookieName = contextkeys.SessionCookieName
	}
	if opts.TouchInterval <= 0 {
		opts.TouchInterval = DefaultTouchInterval
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sess := loadSession(ctx, sessions, sessionID(c, opts.CookieName))
		if sess == nil {
			sess = session.New(uuid.NewString())
			if err := sessions.Save(ctx, sess); err != nil {
				logger.CtxWithError(ctx, "Failed to create session", err)
				apperrors.HandleError(c, apperrors.InternalError(err))
				c.Abort()
				return
			}
		}

		if sess.AccessToken != "" && sess.TokenExpired(time.Now()) {
			logger.CtxInfo(ctx, "Access token expired, signing out", "session_id", sess.ID)
			sess.SignOut()
			if err := sessions.Save(ctx, sess); err != nil {
				logger.CtxWithError(ctx, "Failed to save session", err, "session_id", sess.ID)
			}
		}

		// уборщик удаляет сессии по UpdatedAt, cookie продлевается на каждом ответе
		if sess.Touch(time.Now(), opts.TouchInterval) {
			if err := sessions.Save(ctx, sess); err != nil {
				logger.CtxWithError(ctx, "Failed to touch session", err, "session_id", sess.ID)
			}
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, sess.ID, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
		c.Header(SessionHeader, sess.ID)

		ctx = logger.WithSessionID(ctx, sess.ID)
		if sess.UserID != "" {
			ctx = logger.WithUserID(ctx, sess.UserID)
		}
		ctx = context.WithValue(ctx, contextkeys.SessionContextKey, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.SessionContextKey), sess)

		c.Next()
	}
}

func sessionID(c *gin.Context, cookieName string) string {
	if id, err := c.Cookie(cookieName); err == nil && id != "" {
		return id
	}
	return c.GetHeader(SessionHeader)
}

func loadSession(ctx context.Context, sessions session.Store, id string) *session.Session {
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	sess, err := sessions.Get(ctx, id)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrSessionNotFound) {
			logger.CtxWithError(ctx, "Failed to load session", err, "session_id", id)
		}
		return nil
	}
	return sess
}

// CurrentSession возвращает сессию, положенную SessionMiddleware
func CurrentSession(c *gin.Context) *session.Session {
	val, ok := c.Get(string(contextkeys.SessionContextKey))
	if !ok {
		return nil
	}
	sess, _ := val.(*session.Session)
	return sess
}

// RequireRole пускает только вошедшего пользователя нужного типа
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.Authenticated() {
			logger.CtxWarn(c.Request.Context(), "Unauthorized access", "path", c.Request.URL.Path, "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}

		for _, r := range roles {
			if sess.Role == r {
				c.Next()
				return
			}
		}

		logger.CtxWarn(c.Request.Context(), "Access denied: wrong role", "role", sess.Role, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrWrongRole)
		c.Abort()
	}
}
