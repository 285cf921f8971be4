package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	rec := httptest.NewRecorder()

	ctx := WithHTTP(context.Background(), req, rec)

	assert.Equal(t, req, GetRequest(ctx))
	assert.Equal(t, rec, GetResponseWriter(ctx))
}

func TestGetFromEmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, GetRequest(ctx))
	assert.Nil(t, GetResponseWriter(ctx))
}
