//go:build unit

package amenity_test

import (
	"testing"
	"time"

	"residence-api/internal/domain/amenity"
	"residence-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AmenityBuilder)
	errIs  error
}

func TestAmenity(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAmenityBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Gym", actual.Name().Value())
		assert.Equal(t, int32(2), actual.Capacity())
		assert.Equal(t, int32(120), actual.MaxDurationMin())
		assert.Equal(t, 2*time.Hour, actual.MaxDuration())
		require.NotNil(t, actual.Description())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character name",
				mutate: func(b *builder.AmenityBuilder) { b.WithName("a") },
			},
			{
				name:   "empty name",
				mutate: func(b *builder.AmenityBuilder) { b.WithName("") },
				errIs:  amenity.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.AmenityBuilder) { b.WithName("   ") },
				errIs:  amenity.ErrEmptyName,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum capacity",
				mutate: func(b *builder.AmenityBuilder) { b.WithCapacity(1) },
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.AmenityBuilder) { b.WithCapacity(0) },
				errIs:  amenity.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.AmenityBuilder) { b.WithCapacity(-1) },
				errIs:  amenity.ErrInvalidCapacity,
			},
		})
	})

	t.Run("max duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one minute",
				mutate: func(b *builder.AmenityBuilder) { b.WithMaxDurationMin(1) },
			},
			{
				name:   "zero minutes",
				mutate: func(b *builder.AmenityBuilder) { b.WithMaxDurationMin(0) },
				errIs:  amenity.ErrInvalidMaxDuration,
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewAmenityBuilder().WithName("  Pool  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Pool", actual.Name().Value())
	})

	t.Run("nil description is allowed", func(t *testing.T) {
		actual, err := builder.NewAmenityBuilder().WithDescription(nil).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Description())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAmenityBuilder().With(c.mutate).BuildDomain()

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
