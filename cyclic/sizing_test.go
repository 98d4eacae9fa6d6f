package cyclic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredSize(t *testing.T) {
	tests := []struct {
		capacity    uint64
		recordBytes uint64
		want        uint64
	}{
		{1, 40, 64},
		{3, 40, 144},
		{1000, 40, 40024},
		{4, 8, 56},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("capacity %d x %d = %d", tt.capacity, tt.recordBytes, tt.want), func(t *testing.T) {
			require.NoError(t, CheckCapacity(tt.capacity, tt.recordBytes))
			require.Equal(t, tt.want, RequiredSize(tt.capacity, tt.recordBytes))
		})
	}
}

func TestCheckCapacity(t *testing.T) {
	require.ErrorIs(t, CheckCapacity(0, 40), ErrZeroCapacity)
	require.ErrorIs(t, CheckCapacity(1, 0), ErrBadRecordSize)
	require.ErrorIs(t, CheckCapacity(math.MaxUint64/40, 40), ErrSizeOverflow)
}
