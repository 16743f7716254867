//go:build unit

package reservation_test

import (
	"testing"

	"evcontrol/internal/domain/reservation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmountInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: "0"},
		{name: "letters only", raw: "abc", want: "0"},
		{name: "integer", raw: "150", want: "150"},
		{name: "decimal comma", raw: "12,50", want: "12.5"},
		{name: "currency and thousands", raw: "R$ 1.250,00", want: "1250"},
		{name: "dot is not a decimal mark", raw: "12.50", want: "1250"},
		{name: "second comma ends the number", raw: "1,2,3", want: "1.2"},
		{name: "leading comma", raw: ",5", want: "0.5"},
		{name: "trailing comma", raw: "7,", want: "7"},
		{name: "lone comma", raw: ",", want: "0"},
		{name: "minus sign dropped", raw: "-30", want: "30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.ParseAmountInput(tc.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Run("zero shows the placeholder", func(t *testing.T) {
		assert.Equal(t, "", reservation.FormatAmountInput(decimal.Zero))
	})

	cases := map[string]string{
		"0":          "R$ 0,00",
		"12.5":       "R$ 12,50",
		"999":        "R$ 999,00",
		"1234.5":     "R$ 1.234,50",
		"1234567.89": "R$ 1.234.567,89",
		"-42":        "R$ -42,00",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, reservation.FormatBRL(decimal.RequireFromString(in)))
		})
	}

	t.Run("formatted text parses back to the same amount", func(t *testing.T) {
		d := decimal.RequireFromString("1234.56")
		assert.True(t, reservation.ParseAmountInput(reservation.FormatAmountInput(d)).Equal(d))
	})
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, reservation.ValidateDate(""))
	assert.NoError(t, reservation.ValidateDate("2024-05-10"))
	assert.ErrorIs(t, reservation.ValidateDate("10/05/2024"), reservation.ErrInvalidDate)
	assert.ErrorIs(t, reservation.ValidateDate("2024-02-30"), reservation.ErrInvalidDate)
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "10/05/2024", reservation.FormatDateBR("2024-05-10"))
	assert.Equal(t, "amanhã", reservation.FormatDateBR("amanhã"))
}
