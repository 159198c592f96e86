package follow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge(t *testing.T) {
	edge, err := NewEdge(1, 2)
	require.NoError(t, err)

	assert.Equal(t, uint(1), edge.FollowerID)
	assert.Equal(t, uint(2), edge.FollowedUserID)
	assert.False(t, edge.CreatedAt.IsZero())
}

func TestNewEdge_Rejects(t *testing.T) {
	_, err := NewEdge(3, 3)
	assert.ErrorIs(t, err, ErrSelfFollow)

	_, err = NewEdge(0, 3)
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = NewEdge(3, 0)
	assert.ErrorIs(t, err, ErrInvalidUser)
}
