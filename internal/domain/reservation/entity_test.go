//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"residence-api/internal/domain/reservation"
	"residence-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsConfirmed())
		assert.False(t, actual.IsCancelled())
		assert.False(t, actual.HiddenFromUser())
		assert.Equal(t, time.Hour, actual.TimeSlot().Duration())
	})

	t.Run("time slot validation", func(t *testing.T) {
		runSlotCases(t, []slotCase{
			{
				name:   "one minute slot",
				mutate: func(b *builder.ReservationBuilder) { b.WithDuration(time.Minute) },
			},
			{
				name:   "zero duration slot",
				mutate: func(b *builder.ReservationBuilder) { b.WithDuration(0) },
				errIs:  reservation.ErrInvalidTimeSlot,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.ReservationBuilder) { b.WithDuration(-time.Hour) },
				errIs:  reservation.ErrInvalidTimeSlot,
			},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		actual.Cancel()
		assert.True(t, actual.IsCancelled())
		assert.False(t, actual.IsConfirmed())

		// cancelling twice keeps the same state
		actual.Cancel()
		assert.True(t, actual.IsCancelled())
	})

	t.Run("hide does not touch status", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		actual.Hide()
		assert.True(t, actual.HiddenFromUser())
		assert.True(t, actual.IsConfirmed())
	})

	t.Run("ownership", func(t *testing.T) {
		userID := uuid.New()
		actual, err := builder.NewReservationBuilder().WithUserID(userID).BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsOwnedBy(userID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("expiry", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		actual, err := builder.NewReservationBuilder().
			WithTimeSlot(start, start.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		assert.False(t, actual.HasExpired(start.Add(30*time.Minute)))
		// end boundary itself is not expired yet
		assert.False(t, actual.HasExpired(start.Add(time.Hour)))
		assert.True(t, actual.HasExpired(start.Add(time.Hour+time.Second)))
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(
			time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		amenityID := uuid.New()
		userID := uuid.New()
		r1 := reservation.NewReservation(amenityID, userID, slot)
		r2 := reservation.NewReservation(amenityID, userID, slot)

		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsValid())
	assert.True(t, reservation.StatusConfirmed.IsValid())
	assert.True(t, reservation.StatusCancelled.IsValid())
	assert.False(t, reservation.Status("unknown").IsValid())
	assert.Equal(t, "confirmed", reservation.StatusConfirmed.String())
}

func runSlotCases(t *testing.T, cases []slotCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
