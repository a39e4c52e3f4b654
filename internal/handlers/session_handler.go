package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler принимает результат логина от страницы входа и хранит его
// в сессии браузера вместо local storage.
type SessionHandler struct {
	*BaseHandler
	sessions session.Store
}

func NewSessionHandler(base *BaseHandler, sessions session.Store) *SessionHandler {
	return &SessionHandler{
		BaseHandler: base,
		sessions:    sessions,
	}
}

func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/session")
	{
		s.GET("", h.Current)
		s.POST("", h.SignIn)
		s.DELETE("", h.SignOut)
	}
}

type signInRequest struct {
	AccessToken  string          `json:"accessToken" binding:"required" validate:"required"`
	RefreshToken string          `json:"refreshToken"`
	UserID       string          `json:"_id" binding:"required" validate:"required"`
	Role         models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
	UserInfo     json.RawMessage `json:"userInfo"`
}

type sessionView struct {
	ID             string          `json:"id"`
	UserID         string          `json:"_id,omitempty"`
	Role           models.UserRole `json:"role,omitempty"`
	UserInfo       json.RawMessage `json:"userInfo,omitempty"`
	Authenticated  bool            `json:"authenticated"`
	TokenExpiresAt *time.Time      `json:"tokenExpiresAt,omitempty"`
}

func newSessionView(s *session.Session) sessionView {
	v := sessionView{
		ID:            s.ID,
		UserID:        s.UserID,
		Role:          s.Role,
		UserInfo:      s.UserInfo,
		Authenticated: s.Authenticated(),
	}
	if exp, ok := s.TokenExpiry(); ok {
		v.TokenExpiresAt = &exp
	}
	return v
}

func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, newSessionView(h.Session(c)))
}

// SignIn - POST /session. Состояние прежнего пользователя сбрасывается.
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sess := h.Session(c)
	sess.SignIn(req.AccessToken, req.RefreshToken, req.UserID, req.Role, req.UserInfo)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.stores.Drop(sess.ID)

	logger.CtxInfo(c.Request.Context(), "Session signed in", "user_id", sess.UserID, "role", sess.Role)
	c.JSON(http.StatusOK, newSessionView(sess))
}

// SignOut - DELETE /session: токены и состояние страниц забываются
func (h *SessionHandler) SignOut(c *gin.Context) {
	sess := h.Session(c)
	sess.SignOut()
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.stores.Drop(sess.ID)

	logger.CtxInfo(c.Request.Context(), "Session signed out")
	c.Status(http.StatusNoContent)
}
