package entity

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Period is a calendar month.
type Period struct {
	Month int `json:"mes"`
	Year  int `json:"anio"`
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// IsValid checks the month is 1..12 and the year is plausible.
func (p Period) IsValid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2000 && p.Year <= 9999
}

// Bounds returns [start, end) of the period in loc.
func (p Period) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 1, 0)
}

// MonthName returns the Spanish month name.
func (p Period) MonthName() string {
	return MonthName(p.Month)
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.MonthName(), p.Year)
}

// MonthName returns the Spanish name for month 1..12, or an empty string.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}

	return monthNames[month-1]
}
