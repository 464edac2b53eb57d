package idx_test

import (
	"testing"
	"time"

	"github.com/fleetops/fleetcmd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortableIDs(t *testing.T) {
	t.Parallel()

	a := idx.New()
	b := idx.New()

	_, err := idx.Parse(a.String())
	require.NoError(t, err)
	_, err = idx.Parse(b.String())
	require.NoError(t, err)

	// Monotonic entropy keeps same-millisecond IDs ordered.
	require.Less(t, a.String(), b.String())
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := idx.NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	cases := []string{"", "   ", "not-a-ulid", "0000000000000000000000000!"}
	for _, c := range cases {
		_, err := idx.Parse(c)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", c)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	t.Parallel()

	id := idx.New()
	parsed, err := idx.Parse("  " + id.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	require.True(t, idx.Zero.IsZero())
	require.False(t, idx.New().IsZero())
	require.True(t, idx.Zero.Time().IsZero())
}
