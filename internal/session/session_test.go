package session

import (
	"context"
	"testing"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "s1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSession_RequireToken(t *testing.T) {
	s := New("sid-1")

	_, err := s.RequireToken()
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMissingCredentials))
	assert.Equal(t, "Access token is missing", apperrors.MessageOf(err))

	s.AccessToken = "t1"
	_, err = s.RequireIdentity()
	assert.Equal(t, apperrors.ErrMissingUserID, err)

	s.UserID = "s1"
	creds, err := s.RequireIdentity()
	require.NoError(t, err)
	assert.Equal(t, Credentials{Token: "t1", UserID: "s1"}, creds)
}

func TestSession_NilSessionHasNoCredentials(t *testing.T) {
	var s *Session
	assert.False(t, s.Authenticated())
	_, err := s.RequireToken()
	assert.Error(t, err)
}

func TestSession_TokenExpiry(t *testing.T) {
	now := time.Now()

	s := New("sid-1")
	s.AccessToken = signedToken(t, now.Add(time.Hour))
	assert.False(t, s.TokenExpired(now))

	s.AccessToken = signedToken(t, now.Add(-time.Minute))
	assert.True(t, s.TokenExpired(now))

	s.AccessToken = "not-a-jwt"
	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.False(t, s.TokenExpired(now), "opaque tokens are left to the API")
}

func TestSession_SignInSignOut(t *testing.T) {
	s := New("sid-1")
	s.SignIn("t1", "r1", "c1", models.UserRoleCompany, []byte(`{"companyName":"Acme"}`))
	assert.True(t, s.Authenticated())
	assert.Equal(t, models.UserRoleCompany, s.Role)

	s.SignOut()
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.UserInfo)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.Equal(t, apperrors.ErrSessionNotFound, err)

	s := New("sid-1")
	s.SignIn("t1", "", "s1", models.UserRoleJobSeeker, nil)
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.AccessToken)

	// копия, а не указатель на внутреннее состояние
	got.AccessToken = "changed"
	again, _ := store.Get(ctx, "sid-1")
	assert.Equal(t, "t1", again.AccessToken)

	require.NoError(t, store.Delete(ctx, "sid-1"))
	_, err = store.Get(ctx, "sid-1")
	assert.Error(t, err)
}

func TestSession_Touch(t *testing.T) {
	now := time.Now()
	s := New("sid")
	s.UpdatedAt = now.Add(-30 * time.Second)

	assert.False(t, s.Touch(now, time.Minute))
	assert.True(t, s.Touch(now.Add(time.Minute), time.Minute))
	assert.True(t, now.Add(time.Minute).UTC().Equal(s.UpdatedAt))
}
