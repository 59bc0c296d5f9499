package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"12", "12", true},
		{"0.9", "0.9", true},
		{".5", "0.5", true},
		{"  7.25 ", "7.25", true},
		{"", "", false},
		{"-1", "", false},
		{"1e3", "", false},
		{"1.", "", false},
		{"abc", "", false},
		{"12%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseNumOrPercent(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"12%", "0.12", true},
		{"12", "0.12", true},
		{"2.5", "0.025", true},
		{"2.5%", "0.025", true},
		{"0.025", "0.00025", true},
		{"100", "1", true},
		{"", "", false},
		{"%", "", false},
		{"12%%", "", false},
		{"twelve", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumOrPercent(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestCeilPercent(t *testing.T) {
	assert.Equal(t, "12.35", CeilPercent(d("0.123456")))
	assert.Equal(t, "12.34", CeilPercent(d("0.1234")))
	assert.Equal(t, "75.00", CeilPercent(d("0.75")))
	assert.Equal(t, "0.00", CeilPercent(Zero))
}

func TestCeil2(t *testing.T) {
	assert.Equal(t, "11.34", Ceil2(d("11.333333")))
	assert.Equal(t, "20.00", Ceil2(d("20")))
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "110.00", Fixed2(d("110")))
	assert.Equal(t, "0.13", Fixed2(d("0.125")))
}

func TestDivExact(t *testing.T) {
	got := Div(d("49"), d("50"))
	require.True(t, got.Equal(d("0.98")))

	third := Div(One, d("3"))
	assert.Equal(t, "0.33333333333333333333", third.String())
}
