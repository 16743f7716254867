//go:build unit

package reservation_test

import (
	"testing"

	"evcontrol/internal/domain/reservation"
	"evcontrol/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation(t *testing.T) {
	t.Run("draft has no id and zero amount", func(t *testing.T) {
		d := reservation.NewDraft("2024-05-10")
		assert.False(t, d.IsPersisted())
		assert.Equal(t, int64(0), d.IDValue())
		assert.True(t, d.Amount.IsZero())
		assert.Equal(t, "2024-05-10", d.Date)
	})

	t.Run("clone does not share the id", func(t *testing.T) {
		orig := builder.NewReservationBuilder().WithID(7).BuildDomain()
		clone := orig.Clone()
		require.NotNil(t, clone.ID)

		*clone.ID = 99
		assert.Equal(t, int64(7), orig.IDValue())
	})

	t.Run("name match ignores case", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithClient("Ana Souza").BuildDomain()
		assert.True(t, r.MatchesName("souza"))
		assert.True(t, r.MatchesName(""))
		assert.False(t, r.MatchesName("bruno"))
	})

	t.Run("clone all keeps nil", func(t *testing.T) {
		assert.Nil(t, reservation.CloneAll(nil))
		assert.Len(t, reservation.CloneAll([]reservation.Reservation{}), 0)
	})
}
