package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikesIncrementIsInDatabaseExpression(t *testing.T) {
	// The counter bump must be a SQL expression, not a value computed from a
	// previously read row, so simultaneous likes all land.
	expr := likesIncrement()
	assert.Equal(t, "likes + ?", expr.SQL)
	require.Len(t, expr.Vars, 1)
	assert.Equal(t, 1, expr.Vars[0])
}
