package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	t.Run("IntersectionNonEmpty", func(t *testing.T) {
		err := Require([]Permission{User, Admin}, Admin, PermissionUpdate)
		assert.NoError(t, err)
	})

	t.Run("IntersectionEmpty", func(t *testing.T) {
		err := Require([]Permission{User}, Admin, PermissionUpdate)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("EmptyHeldSet", func(t *testing.T) {
		err := Require(nil, Admin)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("EmptyRequiredSet", func(t *testing.T) {
		// Nothing required means nothing can intersect.
		err := Require([]Permission{Admin})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ExhaustivePairs", func(t *testing.T) {
		// Require fails iff the intersection is empty, for every
		// single-element held/required pairing.
		for _, held := range All {
			for _, required := range All {
				err := Require([]Permission{held}, required)
				if held == required {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrUnauthorized)
				}
			}
		}
	})
}

func TestHas(t *testing.T) {
	assert.True(t, Has([]Permission{User, ItemDelete}, ItemDelete))
	assert.False(t, Has([]Permission{User}, ItemDelete, Admin))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Admin))
	assert.True(t, Valid(PermissionUpdate))
	assert.False(t, Valid(Permission("SUPERUSER")))
}
