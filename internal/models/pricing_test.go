package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing(t *testing.T) {
	t.Run("ZeroValueIsFree", func(t *testing.T) {
		var p Pricing
		assert.False(t, p.IsPaid())
		fee, ok := p.Fee()
		assert.False(t, ok)
		assert.Zero(t, fee)
		assert.Nil(t, p.FeePtr())
	})

	t.Run("NegativeFeeRejected", func(t *testing.T) {
		_, err := Paid(-1)
		require.Error(t, err)
	})

	t.Run("ZeroFeeIsPaid", func(t *testing.T) {
		p, err := Paid(0)
		require.NoError(t, err)
		assert.True(t, p.IsPaid())
	})

	t.Run("ValueScanRoundTrip", func(t *testing.T) {
		paid, err := Paid(500)
		require.NoError(t, err)

		v, err := paid.Value()
		require.NoError(t, err)
		assert.Equal(t, int64(500), v)

		var scanned Pricing
		require.NoError(t, scanned.Scan(v))
		assert.Equal(t, paid, scanned)

		v, err = Free().Value()
		require.NoError(t, err)
		assert.Nil(t, v)
		require.NoError(t, scanned.Scan(nil))
		assert.False(t, scanned.IsPaid())
	})

	t.Run("ScanRejectsNegative", func(t *testing.T) {
		var p Pricing
		assert.Error(t, p.Scan(int64(-5)))
	})
}

func TestEventClone(t *testing.T) {
	attended := true
	ev := Event{ID: 1, Registrations: []Registration{{ID: 1, Attended: &attended}}}

	c := ev.Clone()
	*c.Registrations[0].Attended = false
	c.Registrations = append(c.Registrations, Registration{ID: 2})

	assert.True(t, *ev.Registrations[0].Attended)
	assert.Len(t, ev.Registrations, 1)
}
