package domain

import (
	"sort"
	"time"

	"travelbook/internal/domain/models"
	"travelbook/internal/utils"
)

// SalesRow is one booking line of the sales report, denormalized for tabular
// and PDF rendering.
type SalesRow struct {
	BookingID     int64                `json:"booking_id"`
	PackageTitle  string               `json:"package_title"`
	CustomerName  string               `json:"customer_name"`
	TravelDate    string               `json:"travel_date"`
	Persons       int                  `json:"persons"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	TotalPrice    int64                `json:"total_price"`
	CreatedAt     string               `json:"created_at"`
}

type SalesSummary struct {
	Count        int        `json:"count"`
	TotalAmount  int64      `json:"total_amount"`
	TotalPersons int        `json:"total_persons"`
	Rows         []SalesRow `json:"rows"`
}

// AggregateSales filters bookings to created_at within [from, to] (inclusive
// through the end of the "to" day) and status pending/confirmed, then sums
// revenue and party sizes. Cancelled bookings never count toward revenue.
// Bookings with a missing created_at are excluded rather than treated as an
// error.
func AggregateSales(bookings []models.Booking, from, to time.Time) SalesSummary {
	out := SalesSummary{Rows: []SalesRow{}}
	for _, b := range bookings {
		if !b.Status.CountsTowardSales() {
			continue
		}
		if !utils.InRange(b.CreatedAt, from, to) {
			continue
		}
		title := b.PackageTitle
		if title == "" {
			// package reference gone; keep the row readable
			title = "N/A"
		}
		out.Rows = append(out.Rows, SalesRow{
			BookingID:     b.ID,
			PackageTitle:  title,
			CustomerName:  b.Name,
			TravelDate:    utils.FormatDate(b.TravelDate),
			Persons:       b.Persons,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			TotalPrice:    b.TotalPrice,
			CreatedAt:     utils.FormatDateTime(b.CreatedAt),
		})
		out.Count++
		out.TotalAmount += b.TotalPrice
		out.TotalPersons += b.Persons
	}
	return out
}

// PackageCount ranks a package by how many bookings reference it.
type PackageCount struct {
	PackageID    int64  `json:"package_id"`
	PackageTitle string `json:"package_title"`
	Bookings     int    `json:"bookings"`
}

// TopPackages groups bookings by package and returns up to n entries sorted
// by descending booking count. Ties keep first-seen order.
func TopPackages(bookings []models.Booking, n int) []PackageCount {
	if n <= 0 {
		n = 5
	}
	order := []int64{}
	counts := map[int64]*PackageCount{}
	for _, b := range bookings {
		pc, ok := counts[b.PackageID]
		if !ok {
			pc = &PackageCount{PackageID: b.PackageID, PackageTitle: b.PackageTitle}
			counts[b.PackageID] = pc
			order = append(order, b.PackageID)
		}
		if pc.PackageTitle == "" {
			pc.PackageTitle = b.PackageTitle
		}
		pc.Bookings++
	}

	ranked := make([]PackageCount, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *counts[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bookings > ranked[j].Bookings
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// WeekBucket is one bar of the weekly bookings chart.
type WeekBucket struct {
	WeekStart string `json:"week_start"`
	Bookings  int    `json:"bookings"`
}

// WeeklyBuckets counts bookings per Sunday-keyed week for the given keys.
// Bookings outside the window are silently dropped from the chart.
func WeeklyBuckets(bookings []models.Booking, weekStarts []string) []WeekBucket {
	buckets := make([]WeekBucket, len(weekStarts))
	index := map[string]int{}
	for i, key := range weekStarts {
		buckets[i] = WeekBucket{WeekStart: key}
		index[key] = i
	}
	for _, b := range bookings {
		key := utils.WeekBucketKey(b.CreatedAt)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			buckets[i].Bookings++
		}
	}
	return buckets
}
