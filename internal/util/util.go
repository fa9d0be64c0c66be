// Package util holds small formatting helpers shared by the notifier and the operator CLI.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"visitadoras/internal/domain/constants"

	"github.com/shopspring/decimal"
)

// Checksum returns the hex SHA256 of content. The CLI prints it so an operator
// can tell whether a workbook was already imported.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:])
}

// FormatQuetzales renders an amount as "Q1,234.50".
func FormatQuetzales(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return sign + constants.DefaultCurrencySymbol + grouped.String() + "." + cents
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
// Durations under a second keep millisecond precision.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
