package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain dot decimal", input: "10.00", expected: "10"},
		{name: "comma decimal", input: "2,5", expected: "2.5"},
		{name: "italian thousands", input: "1.234,56", expected: "1234.56"},
		{name: "euro prefix", input: "€100,00", expected: "100"},
		{name: "negative comma decimal", input: "-12,30", expected: "-12.3"},
		{name: "empty is zero", input: "", expected: "0"},
		{name: "whitespace only is zero", input: "   ", expected: "0"},
		{name: "garbage errors", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			assert.True(t, expected.Equal(amount), "got %s", amount)
		})
	}
}

func TestParseAmountLenient(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(2.5).Equal(ParseAmountLenient("2,5")))
	assert.True(t, decimal.Zero.Equal(ParseAmountLenient("not-a-number")))
	assert.True(t, decimal.Zero.Equal(ParseAmountLenient("")))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", FormatAmount(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}
