package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteOrderAppliesServiceCharge(t *testing.T) {
	st := newSeededStore(t)

	quote, err := st.QuoteOrder([]CartLine{
		{ItemID: "breakfast-continental", Quantity: 2}, // 2 x 450
		{ItemID: "lunch-veg-thali", Quantity: 1},       // 1 x 600
	})
	require.NoError(t, err)

	require.Len(t, quote.Lines, 2)
	assert.Equal(t, 900.0, quote.Lines[0].Amount)
	assert.Equal(t, 600.0, quote.Lines[1].Amount)
	assert.Equal(t, 1500.0, quote.FoodTotal)
	assert.Equal(t, 75.0, quote.ServiceCharge)
	assert.Equal(t, 1575.0, quote.GrandTotal)
}

func TestQuoteOrderSkipsUnknownAndEmptyLines(t *testing.T) {
	st := newSeededStore(t)

	quote, err := st.QuoteOrder([]CartLine{
		{ItemID: "breakfast-continental", Quantity: 0},
		{ItemID: "no-such-item", Quantity: 3},
		{ItemID: "dinner-bbq", Quantity: 1}, // 1200
	})
	require.NoError(t, err)

	require.Len(t, quote.Lines, 1)
	assert.Equal(t, 1200.0, quote.FoodTotal)
	assert.Equal(t, 60.0, quote.ServiceCharge)
	assert.Equal(t, 1260.0, quote.GrandTotal)
}

func TestQuoteOrderEmptyCart(t *testing.T) {
	st := newSeededStore(t)

	quote, err := st.QuoteOrder(nil)
	require.NoError(t, err)

	assert.Empty(t, quote.Lines)
	assert.Equal(t, 0.0, quote.GrandTotal)
}
