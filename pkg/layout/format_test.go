package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{900, "900"},
		{29500, "29,500"},
		{1234567, "1,234,567"},
		{12.5, "12.5"},
		{29500.0 / 900, "32.778"},
		{1234567.5, "1,234,567.5"},
		{-2500, "-2,500"},
		{-0.25, "-0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

func TestNum(t *testing.T) {
	assert.Equal(t, "100", Num(100))
	assert.Equal(t, "12.5", Num(12.5))
	assert.Equal(t, "0", Num(0))
}

func TestThaiDate(t *testing.T) {
	d := time.Date(2025, time.August, 15, 10, 30, 0, 0, bangkok)
	assert.Equal(t, "15 สิงหาคม 2568", ThaiDate(d))
	assert.Equal(t, "15 ส.ค. 2568", ThaiDateShort(d))
	assert.Equal(t, "10:30", ThaiTime(d))
}

func TestThaiDateConvertsToBangkok(t *testing.T) {
	// 23:30 UTC on the 14th is already the 15th in Bangkok.
	d := time.Date(2025, time.August, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "15 สิงหาคม 2568", ThaiDate(d))
	assert.Equal(t, "06:30", ThaiTime(d))
}
