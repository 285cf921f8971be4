package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_IssueAndRead(t *testing.T) {
	s := NewSessions("testsecret")

	token, err := s.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := s.Read(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)
}

func TestSessions_IssueFailsWithoutSecret(t *testing.T) {
	s := NewSessions("")

	_, err := s.Issue(1)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestSessions_ReadInvalid(t *testing.T) {
	s := NewSessions("testsecret")

	t.Run("Empty", func(t *testing.T) {
		_, ok := s.Read("")
		assert.False(t, ok)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, ok := s.Read("not-a-jwt")
		assert.False(t, ok)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewSessions("othersecret")
		token, err := other.Issue(1)
		require.NoError(t, err)

		_, ok := s.Read(token)
		assert.False(t, ok)
	})
}

func TestExtractToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "cookie_token", ExtractToken(req))
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractToken(req))
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractToken(req))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		assert.Empty(t, ExtractToken(req))
	})
}

func TestSetAndClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "abc123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "abc123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookieMaxAge, cookies[0].MaxAge)

	rec = httptest.NewRecorder()
	ClearCookie(rec)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestNewResetToken(t *testing.T) {
	tok, err := NewResetToken()
	require.NoError(t, err)
	assert.Len(t, tok, 40) // 20 bytes hex encoded

	other, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
