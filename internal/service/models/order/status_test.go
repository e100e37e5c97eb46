package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "pending to paid", from: StatusPending, to: StatusPaid, want: true},
		{name: "paid is terminal", from: StatusPaid, to: StatusPending, want: false},
		{name: "paid to paid", from: StatusPaid, to: StatusPaid, want: false},
		{name: "pending to pending", from: StatusPending, to: StatusPending, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	parsed, err := ParseStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, parsed)

	parsed, err = ParseStatus("PAID")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, parsed)

	_, err = ParseStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
