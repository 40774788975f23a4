package report

import (
	"testing"
	"time"

	"pos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

// Wednesday 15 October 2025, 10:00 WIB.
var ref = time.Date(2025, time.October, 15, 10, 0, 0, 0, jakarta)

func order(number string, ts time.Time, total int64, lines ...entity.CartLine) entity.Order {
	return entity.Order{OrderNumber: number, Timestamp: ts, TotalAmount: total, Items: lines}
}

func line(name string, qty int) entity.CartLine {
	return entity.CartLine{Name: name, Quantity: qty}
}

func numbers(orders entity.Orders) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.OrderNumber)
	}

	return out
}

func TestBucketOrders(t *testing.T) {
	orders := entity.Orders{
		order("today-early", time.Date(2025, 10, 15, 0, 5, 0, 0, jakarta), 1),
		// 23:30 UTC on the 14th is already the 15th in Jakarta.
		order("today-utc", time.Date(2025, 10, 14, 23, 30, 0, 0, time.UTC), 1),
		order("yesterday", time.Date(2025, 10, 14, 18, 0, 0, 0, jakarta), 1),
		order("sunday", time.Date(2025, 10, 12, 0, 0, 0, 0, jakarta), 1),
		order("saturday", time.Date(2025, 10, 11, 23, 59, 0, 0, jakarta), 1),
		order("month-start", time.Date(2025, 10, 1, 0, 0, 0, 0, jakarta), 1),
		order("last-month", time.Date(2025, 9, 30, 23, 0, 0, 0, jakarta), 1),
		order("future", time.Date(2025, 11, 2, 8, 0, 0, 0, jakarta), 1),
	}

	tests := []struct {
		window Window
		want   []string
	}{
		{window: WindowToday, want: []string{"today-early", "today-utc"}},
		{window: WindowYesterday, want: []string{"yesterday"}},
		{window: WindowThisWeek, want: []string{"today-early", "today-utc", "yesterday", "sunday", "future"}},
		{window: WindowThisMonth, want: []string{"today-early", "today-utc", "yesterday", "sunday", "saturday", "month-start", "future"}},
		{window: Window("year"), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(BucketOrders(orders, tt.window, ref)))
		})
	}
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, jakarta), WeekStart(ref))

	sunday := time.Date(2025, 10, 12, 21, 0, 0, 0, jakarta)
	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, jakarta), WeekStart(sunday))
}

func TestSummarize(t *testing.T) {
	orders := entity.Orders{
		order("a", ref, 110000, line("Tempered Glass", 2), line("Ganti LCD", 1)),
		order("b", ref, 35000, line("Kabel Data USB-C", 1)),
	}

	assert.Equal(t, Summary{TransactionCount: 2, TotalRevenue: 145000, TotalItemsSold: 4}, Summarize(orders))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestRevenueSeries_ZeroOrders(t *testing.T) {
	points := RevenueSeries(nil, 7, ref)

	require.Len(t, points, 7)
	assert.Equal(t, "2025-10-09", points[0].Date)
	assert.Equal(t, "2025-10-15", points[6].Date)
	assert.Equal(t, "Rab 15/10", points[6].Label)
	for _, p := range points {
		assert.Zero(t, p.Revenue)
	}
}

func TestRevenueSeries_SumsPerDay(t *testing.T) {
	orders := entity.Orders{
		order("a", time.Date(2025, 10, 15, 9, 0, 0, 0, jakarta), 1000),
		order("b", time.Date(2025, 10, 15, 11, 0, 0, 0, jakarta), 500),
		order("c", time.Date(2025, 10, 13, 9, 0, 0, 0, jakarta), 700),
		order("too-old", time.Date(2025, 10, 1, 9, 0, 0, 0, jakarta), 9999),
	}

	points := RevenueSeries(orders, 3, ref)

	assert.Equal(t, []Point{
		{Label: "Sen 13/10", Date: "2025-10-13", Revenue: 700},
		{Label: "Sel 14/10", Date: "2025-10-14", Revenue: 0},
		{Label: "Rab 15/10", Date: "2025-10-15", Revenue: 1500},
	}, points)
}

func TestRevenueSeries_DefaultDays(t *testing.T) {
	assert.Len(t, RevenueSeries(nil, 0, ref), DefaultSeriesDays)
}

func TestTopSellers_TiesKeepFirstAppearance(t *testing.T) {
	orders := entity.Orders{
		order("1", ref, 0, line("C", 3), line("A", 2)),
		order("2", ref, 0, line("B", 5)),
		order("3", ref, 0, line("A", 3)),
	}

	assert.Equal(t, []Seller{
		{Name: "A", QuantitySold: 5},
		{Name: "B", QuantitySold: 5},
		{Name: "C", QuantitySold: 3},
	}, TopSellers(orders, 5))
}

func TestTopSellers_Truncates(t *testing.T) {
	orders := entity.Orders{
		order("1", ref, 0, line("A", 1), line("B", 2), line("C", 3)),
	}

	assert.Equal(t, []Seller{{Name: "C", QuantitySold: 3}, {Name: "B", QuantitySold: 2}}, TopSellers(orders, 2))
	assert.Len(t, TopSellers(orders, 0), 3)
	assert.Empty(t, TopSellers(nil, 5))
}
