package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

func TestParseUserRole(t *testing.T) {
	r, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	for _, bad := range []string{"manager", "ADMIN", " worker", ""} {
		_, err := ParseUserRole(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestParseMovementType(t *testing.T) {
	for _, ok := range []string{"restock", "usage", "waste", "adjustment"} {
		m, err := ParseMovementType(ok)
		require.NoError(t, err)
		assert.Equal(t, MovementType(ok), m)
	}

	_, err := ParseMovementType("transfer")
	assert.Error(t, err)
}
