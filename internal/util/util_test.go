package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.Equal(t, Checksum([]byte("Hoja3")), Checksum([]byte("Hoja3")))
	assert.NotEqual(t, Checksum([]byte("Hoja3")), Checksum([]byte("Hoja4")))
}

func TestFormatQuetzales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "Q0.00"},
		{amount: "185.75", expected: "Q185.75"},
		{amount: "1000", expected: "Q1,000.00"},
		{amount: "1234567.891", expected: "Q1,234,567.89"},
		{amount: "-50.5", expected: "-Q50.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatQuetzales(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub second", duration: 250 * time.Millisecond, expected: "250ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
