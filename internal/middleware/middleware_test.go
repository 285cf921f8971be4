package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-be/internal/auth"
	"storefront-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	sessions := auth.NewSessions("testsecret")
	mw := AuthMiddleware(sessions)

	t.Run("ValidCookie", func(t *testing.T) {
		token, err := sessions.Issue(7)
		require.NoError(t, err)

		var gotID uint
		var gotOK bool
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, gotOK = utils.GetUserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, gotOK)
		assert.Equal(t, uint(7), gotID)
	})

	t.Run("NoToken", func(t *testing.T) {
		var gotOK bool
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, gotOK = utils.GetUserIDFromContext(r.Context())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

		assert.False(t, gotOK)
	})

	t.Run("InvalidTokenIsAnonymous", func(t *testing.T) {
		var gotOK bool
		var status int
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, gotOK = utils.GetUserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		status = rec.Code

		assert.False(t, gotOK)
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("StrictTierExhausts", func(t *testing.T) {
		var lastStatus int
		// Burst for the strict tier is 5; the 6th immediate request
		// must be rejected.
		for i := 0; i < 6; i++ {
			req := httptest.NewRequest(http.MethodPost, "/query", nil)
			req.RemoteAddr = "203.0.113.9:1234"
			req.Header.Set("X-Action", "auth")

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			lastStatus = rec.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastStatus)
	})

	t.Run("SeparateIdentities", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.RemoteAddr = "203.0.113.77:1234"

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// TestMiddlewareChain composes the middlewares the way the server does and
// checks the limiter sees the authenticated identity, not just the IP.
func TestMiddlewareChain(t *testing.T) {
	sessions := auth.NewSessions("testsecret")

	h := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	h = RateLimitMiddleware(h)
	h = LoggingMiddleware(h)
	h = AuthMiddleware(sessions)(h)

	send := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.RemoteAddr = "203.0.113.50:1234"
		req.Header.Set("X-Action", "auth")
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	tokenA, err := sessions.Issue(101)
	require.NoError(t, err)
	tokenB, err := sessions.Issue(102)
	require.NoError(t, err)

	// User A exhausts the strict-tier burst from this address.
	var lastStatus int
	for i := 0; i < 6; i++ {
		lastStatus = send(tokenA)
	}
	assert.Equal(t, http.StatusTooManyRequests, lastStatus)

	// User B on the same address has an untouched bucket.
	assert.Equal(t, http.StatusOK, send(tokenB))
}

func TestLoggingMiddleware(t *testing.T) {
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
