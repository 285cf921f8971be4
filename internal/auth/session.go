package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "token"

	// cookieMaxAge is one year, matching the token lifetime.
	cookieMaxAge = 365 * 24 * 60 * 60
)

var ErrMissingSecret = errors.New("signing secret is not set")

type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Sessions issues and reads signed session tokens. The signing secret is
// injected at construction instead of being read from the environment on
// every call.
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// Issue signs a token embedding the user id. It fails closed when the
// secret is absent.
func (s *Sessions) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(365 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Read verifies a token and returns the embedded user id. A missing,
// malformed, expired, or otherwise invalid token is reported as
// (0, false) rather than an error so callers treat it as anonymous.
func (s *Sessions) Read(tokenStr string) (uint, bool) {
	if tokenStr == "" || len(s.secret) == 0 {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return 0, false
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return 0, false
	}

	return claims.UserID, true
}

// ExtractToken pulls the session token off an incoming request. The cookie
// is preferred; a bearer Authorization header is accepted as fallback.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}

	return ""
}

// SetCookie writes the session cookie, HTTP-only with a 1 year expiry.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})
}

// ClearCookie removes the session cookie (sign out).
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
