//go:build unit

package product_test

import (
	"testing"

	"merch-store/internal/domain/product"
	"merch-store/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ProductBuilder)
	errIs  error
}

func TestProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Classic Tee", actual.Name())
		assert.Equal(t, int64(2500), actual.PriceCents())
		assert.True(t, actual.Active(), "new products start active")
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("") },
				errIs:  product.ErrMissingName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("   ") },
				errIs:  product.ErrMissingName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ProductBuilder) { b.WithPriceCents(-1) },
				errIs:  product.ErrNegativePrice,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.ProductBuilder) { b.WithPriceCents(0) },
			},
		})
	})

	t.Run("name and description trimming", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().
			WithName("  Classic Tee  ").
			With(func(b *builder.ProductBuilder) { b.Description = "  soft  " }).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Classic Tee", actual.Name())
		assert.Equal(t, "soft", actual.Description())
	})

	t.Run("update validates the same rules", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		err = actual.Update("", "desc", 100, true, "", nil)
		assert.ErrorIs(t, err, product.ErrMissingName)

		err = actual.Update("Mug", "desc", -5, true, "", nil)
		assert.ErrorIs(t, err, product.ErrNegativePrice)

		err = actual.Update("Mug", "desc", 1500, false, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "Mug", actual.Name())
		assert.Equal(t, int64(1500), actual.PriceCents())
		assert.False(t, actual.Active())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		p1, err1 := builder.NewProductBuilder().BuildDomain()
		p2, err2 := builder.NewProductBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, p1.ID(), p2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewProductBuilder().With(c.mutate).BuildDomain()

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
