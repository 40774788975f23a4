// Package report aggregates sales history into dashboard metrics.
//
// All calendar arithmetic happens in the location of the reference instant,
// so callers pick the shop's timezone by passing ref in it.
package report

import (
	"fmt"
	"sort"
	"time"

	"pos/internal/domain/entity"
)

// Window is a named reporting time range.
type Window string

const (
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	WindowThisWeek  Window = "week"
	WindowThisMonth Window = "month"
)

// IsValid checks if the Window is a valid value.
func (w Window) IsValid() bool {
	switch w {
	case WindowToday, WindowYesterday, WindowThisWeek, WindowThisMonth:
		return true
	default:
		return false
	}
}

const (
	DefaultSeriesDays     = 7
	DefaultTopSellerLimit = 5
)

const dateLayout = "2006-01-02"

var weekdayLabels = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.In(b.Location()).Format(dateLayout) == b.Format(dateLayout)
}

// WeekStart returns midnight of the most recent Sunday at or before ref.
func WeekStart(ref time.Time) time.Time {
	day := startOfDay(ref)

	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStart returns midnight of the first day of ref's month.
func MonthStart(ref time.Time) time.Time {
	y, m, _ := ref.Date()

	return time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
}

// BucketOrders returns the orders that fall into window relative to ref.
// Today and Yesterday match the calendar day. ThisWeek and ThisMonth keep
// everything on or after the window start, future timestamps included.
func BucketOrders(orders entity.Orders, window Window, ref time.Time) entity.Orders {
	var match func(time.Time) bool

	switch window {
	case WindowToday:
		match = func(ts time.Time) bool { return sameDay(ts, ref) }
	case WindowYesterday:
		yesterday := ref.AddDate(0, 0, -1)
		match = func(ts time.Time) bool { return sameDay(ts, yesterday) }
	case WindowThisWeek:
		start := WeekStart(ref)
		match = func(ts time.Time) bool { return !ts.Before(start) }
	case WindowThisMonth:
		start := MonthStart(ref)
		match = func(ts time.Time) bool { return !ts.Before(start) }
	default:
		return entity.Orders{}
	}

	out := make(entity.Orders, 0, len(orders))
	for _, o := range orders {
		if match(o.Timestamp) {
			out = append(out, o)
		}
	}

	return out
}

// Summary is the reduction of a set of orders.
type Summary struct {
	TransactionCount int   `json:"transactionCount"`
	TotalRevenue     int64 `json:"totalRevenue"`
	TotalItemsSold   int   `json:"totalItemsSold"`
}

// Summarize counts transactions, revenue and items sold.
func Summarize(orders entity.Orders) Summary {
	var s Summary
	for _, o := range orders {
		s.TransactionCount++
		s.TotalRevenue += o.TotalAmount
		s.TotalItemsSold += o.ItemsSold()
	}

	return s
}

// Point is the revenue of one day.
type Point struct {
	Label   string `json:"label"`
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// RevenueSeries returns one point per day for the days ending on ref's day,
// oldest first, with zero revenue for days without orders.
func RevenueSeries(orders entity.Orders, days int, ref time.Time) []Point {
	if days <= 0 {
		days = DefaultSeriesDays
	}

	loc := ref.Location()
	revenueByDate := make(map[string]int64)
	for _, o := range orders {
		revenueByDate[o.Timestamp.In(loc).Format(dateLayout)] += o.TotalAmount
	}

	today := startOfDay(ref)
	points := make([]Point, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(dateLayout)
		points = append(points, Point{
			Label:   fmt.Sprintf("%s %s", weekdayLabels[day.Weekday()], day.Format("02/01")),
			Date:    date,
			Revenue: revenueByDate[date],
		})
	}

	return points
}

// Seller is the quantity sold of one item name.
type Seller struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantitySold"`
}

// TopSellers ranks item names by quantity sold across all orders. Ties keep
// the order in which names were first encountered.
func TopSellers(orders entity.Orders, limit int) []Seller {
	if limit <= 0 {
		limit = DefaultTopSellerLimit
	}

	index := make(map[string]int)
	sellers := make([]Seller, 0)
	for _, o := range orders {
		for _, line := range o.Items {
			i, ok := index[line.Name]
			if !ok {
				i = len(sellers)
				index[line.Name] = i
				sellers = append(sellers, Seller{Name: line.Name})
			}
			sellers[i].QuantitySold += line.Quantity
		}
	}

	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].QuantitySold > sellers[j].QuantitySold
	})

	if len(sellers) > limit {
		sellers = sellers[:limit]
	}

	return sellers
}
