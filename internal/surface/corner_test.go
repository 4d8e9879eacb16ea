package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCornerRoundTrip(t *testing.T) {
	for _, corner := range []Corner{CornerTopStart, CornerTopEnd, CornerBottomStart, CornerBottomEnd} {
		parsed, err := ParseCorner(corner.String())
		require.NoError(t, err)
		assert.Equal(t, corner, parsed)
	}
}

func TestParseCornerRejectsUnknown(t *testing.T) {
	_, err := ParseCorner("middle_center")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "middle_center")
}

func TestCornerOverlapModes(t *testing.T) {
	assert.False(t, CornerTopStart.avoidsVerticalOverlap())
	assert.False(t, CornerTopEnd.avoidsVerticalOverlap())
	assert.True(t, CornerBottomStart.avoidsVerticalOverlap())
	assert.True(t, CornerBottomEnd.avoidsVerticalOverlap())

	assert.False(t, CornerTopStart.avoidsHorizontalOverlap())
	assert.True(t, CornerTopEnd.avoidsHorizontalOverlap())
	assert.False(t, CornerBottomStart.avoidsHorizontalOverlap())
	assert.True(t, CornerBottomEnd.avoidsHorizontalOverlap())
}
