package session

import (
	"context"
	"encoding/json"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Session - то, что браузер раньше держал в local storage:
// accessToken, refreshToken, _id и userInfo. Передается явно в каждый сервис.
type Session struct {
	ID           string          `json:"id"`
	AccessToken  string          `json:"accessToken,omitempty"`
	RefreshToken string          `json:"refreshToken,omitempty"`
	UserID       string          `json:"_id,omitempty"`
	Role         models.UserRole `json:"role,omitempty"`
	UserInfo     json.RawMessage `json:"userInfo,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Credentials - минимум, нужный HTTP-клиенту
type Credentials struct {
	Token  string
	UserID string
}

// Store - хранилище сессий браузера
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (s *Session) Credentials() Credentials {
	if s == nil {
		return Credentials{}
	}
	return Credentials{Token: s.AccessToken, UserID: s.UserID}
}

func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != "" && s.UserID != ""
}

// RequireToken возвращает ErrMissingToken, если accessToken не задан
func (s *Session) RequireToken() (Credentials, error) {
	creds := s.Credentials()
	if creds.Token == "" {
		return creds, apperrors.ErrMissingToken
	}
	return creds, nil
}

// RequireIdentity требует и токен, и _id
func (s *Session) RequireIdentity() (Credentials, error) {
	creds, err := s.RequireToken()
	if err != nil {
		return creds, err
	}
	if creds.UserID == "" {
		return creds, apperrors.ErrMissingUserID
	}
	return creds, nil
}

// SignIn сохраняет результат логина, полученный фронтом от API
func (s *Session) SignIn(accessToken, refreshToken, userID string, role models.UserRole, userInfo json.RawMessage) {
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
	s.UserID = userID
	s.Role = role
	s.UserInfo = userInfo
	s.UpdatedAt = time.Now().UTC()
}

func (s *Session) SignOut() {
	s.AccessToken = ""
	s.RefreshToken = ""
	s.UserID = ""
	s.Role = ""
	s.UserInfo = nil
	s.UpdatedAt = time.Now().UTC()
}

// Touch отмечает активность, но не чаще раза в every.
// true - UpdatedAt сдвинут и сессию нужно сохранить.
func (s *Session) Touch(now time.Time, every time.Duration) bool {
	if now.Sub(s.UpdatedAt) < every {
		return false
	}
	s.UpdatedAt = now.UTC()
	return true
}

// TokenExpiry читает claim exp без проверки подписи. Подпись проверяет API.
func (s *Session) TokenExpiry() (time.Time, bool) {
	if s == nil || s.AccessToken == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired - true только если exp читается и уже наступил
func (s *Session) TokenExpired(now time.Time) bool {
	exp, ok := s.TokenExpiry()
	return ok && !now.Before(exp)
}
