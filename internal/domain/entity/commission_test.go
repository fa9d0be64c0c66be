package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCommissionRule_Amount(t *testing.T) {
	tests := []struct {
		percentage string
		base       string
		want       string
	}{
		{percentage: "15", base: "1000", want: "150.00"},
		{percentage: "12.5", base: "333.33", want: "41.67"},
		{percentage: "10", base: "0.05", want: "0.01"},
		{percentage: "10", base: "0.04", want: "0.00"},
		{percentage: "0", base: "1000", want: "0.00"},
		{percentage: "100", base: "99.999", want: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.percentage+"% of "+tt.base, func(t *testing.T) {
			rule := CommissionRule{
				Percentage: decimal.RequireFromString(tt.percentage),
				Base:       decimal.RequireFromString(tt.base),
			}
			assert.Equal(t, tt.want, rule.Amount().StringFixed(2))
		})
	}
}

func TestCommissionRule_IsValid(t *testing.T) {
	assert.True(t, CommissionRule{Percentage: decimal.NewFromInt(100)}.IsValid())
	assert.True(t, CommissionRule{}.IsValid())
	assert.False(t, CommissionRule{Percentage: decimal.RequireFromString("100.01")}.IsValid())
	assert.False(t, CommissionRule{Percentage: decimal.NewFromInt(-1)}.IsValid())
	assert.False(t, CommissionRule{Base: decimal.NewFromInt(-1)}.IsValid())
}

func TestCategoryAmounts_TotalIsDerived(t *testing.T) {
	row := &MonthlyCommission{Amounts: CategoryAmounts{
		USG:      decimal.RequireFromString("150.00"),
		Especial: decimal.RequireFromString("25.50"),
		EKG:      decimal.RequireFromString("10.25"),
	}}
	assert.Equal(t, "185.75", row.Total().StringFixed(2))

	row.Amounts = row.Amounts.Add(CategoryAmounts{EKG: decimal.NewFromInt(4)})
	assert.Equal(t, "189.75", row.Total().StringFixed(2))
	assert.True(t, row.Amounts.IsPositive())
	assert.False(t, CategoryAmounts{}.IsPositive())
}

func TestCategoryAmounts_AddKeepsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cents := func() decimal.Decimal { return decimal.New(rng.Int63n(1_000_000), -2) }

	for i := 0; i < 200; i++ {
		a := CategoryAmounts{USG: cents(), Especial: cents(), EKG: cents()}
		b := CategoryAmounts{USG: cents(), Especial: cents(), EKG: cents()}

		sum := a.Add(b)
		assert.True(t, sum.Total().Equal(a.Total().Add(b.Total())), "a=%v b=%v", a, b)
		assert.True(t, sum.USG.Equal(a.USG.Add(b.USG)))
	}
}

func TestSummarizeMonthly(t *testing.T) {
	summary := SummarizeMonthly([]*MonthlyCommission{
		{Amounts: CategoryAmounts{USG: decimal.NewFromInt(10)}, Status: CommissionPending},
		{Amounts: CategoryAmounts{USG: decimal.NewFromInt(20)}, Status: CommissionPaid},
		{Amounts: CategoryAmounts{EKG: decimal.NewFromInt(5)}, Status: CommissionPaid},
	})

	assert.Equal(t, 1, summary.CountPending)
	assert.Equal(t, 2, summary.CountPaid)
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(25)))
	assert.True(t, summary.Total().Equal(decimal.NewFromInt(35)))

	empty := SummarizeMonthly(nil)
	assert.True(t, empty.Total().IsZero())
}

func TestReferralCommission_CanBePaidBy(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	pool := &ReferralCommission{}
	assert.True(t, pool.InPool())
	assert.True(t, pool.CanBePaidBy(me))
	assert.True(t, pool.CanBePaidBy(other))

	mine := &ReferralCommission{AssignedTo: &me}
	assert.False(t, mine.InPool())
	assert.True(t, mine.CanBePaidBy(me))
	assert.False(t, mine.CanBePaidBy(other))
}

func TestPeriod(t *testing.T) {
	loc, err := time.LoadLocation("America/Guatemala")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	p := Period{Month: 12, Year: 2024}
	start, end := p.Bounds(loc)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), end)
	assert.Equal(t, "Diciembre 2024", p.String())

	assert.Equal(t, Period{Month: 5, Year: 2024}, PeriodOf(time.Date(2024, time.June, 1, 5, 30, 0, 0, time.UTC).In(loc)))

	assert.False(t, Period{Month: 0, Year: 2024}.IsValid())
	assert.False(t, Period{Month: 13, Year: 2024}.IsValid())
	assert.False(t, Period{Month: 1, Year: 1999}.IsValid())
	assert.Equal(t, "", MonthName(13))
}

func TestNewGeoPoint(t *testing.T) {
	lat, lng := 14.6, -90.5
	badLat := 95.0

	point, ok := NewGeoPoint(&lat, &lng)
	assert.True(t, ok)
	assert.Equal(t, &GeoPoint{Latitude: 14.6, Longitude: -90.5}, point)

	point, ok = NewGeoPoint(nil, nil)
	assert.True(t, ok)
	assert.Nil(t, point)

	_, ok = NewGeoPoint(&lat, nil)
	assert.False(t, ok)

	_, ok = NewGeoPoint(&badLat, &lng)
	assert.False(t, ok)
}

func TestImportPreview_SortByTotalDesc(t *testing.T) {
	preview := &ImportPreview{Rows: []ImportRow{
		{PhysicianName: "A", Amounts: CategoryAmounts{USG: decimal.NewFromInt(5)}},
		{PhysicianName: "B", Amounts: CategoryAmounts{USG: decimal.NewFromInt(50)}},
		{PhysicianName: "C", Amounts: CategoryAmounts{EKG: decimal.NewFromInt(5)}},
	}}

	preview.SortByTotalDesc()

	assert.Equal(t, "B", preview.Rows[0].PhysicianName)
	assert.Equal(t, "A", preview.Rows[1].PhysicianName)
	assert.Equal(t, "C", preview.Rows[2].PhysicianName)
}
