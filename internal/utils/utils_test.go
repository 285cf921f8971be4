package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrPtr(t *testing.T) {
	p := StrPtr("hello")
	assert.NotNil(t, p)
	assert.Equal(t, "hello", *p)
}

func TestToUint(t *testing.T) {
	n, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), n)

	_, err = ToUint("not-a-number")
	assert.Error(t, err)
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = SetUserContext(ctx, 9)
	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(9), id)
}
