package domain

import (
	"testing"
	"time"

	"travelbook/internal/domain/models"
)

func createdAt(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestAggregateSales_WindowAndStatus(t *testing.T) {
	from := time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local)

	bookings := []models.Booking{
		// day before the window
		{ID: 1, Status: models.BookingConfirmed, TotalPrice: 5000, Persons: 1,
			CreatedAt: createdAt(2026, 1, 3, 23)},
		// inside the window
		{ID: 2, PackageTitle: "Cox's Bazar Beach Escape", Name: "Rahim",
			Status: models.BookingConfirmed, TotalPrice: 10000, Persons: 2,
			TravelDate: createdAt(2026, 1, 20, 0), CreatedAt: createdAt(2026, 1, 10, 12)},
		// last afternoon of the window, still inside
		{ID: 3, PackageTitle: "Sundarban Cruise", Status: models.BookingPending,
			TotalPrice: 8000, Persons: 4, CreatedAt: createdAt(2026, 1, 11, 16)},
		// cancelled inside the window, excluded
		{ID: 4, Status: models.BookingCancelled, TotalPrice: 9999, Persons: 3,
			CreatedAt: createdAt(2026, 1, 10, 9)},
		// day after the window
		{ID: 5, Status: models.BookingConfirmed, TotalPrice: 7000, Persons: 2,
			CreatedAt: createdAt(2026, 1, 12, 0)},
		// missing created_at, excluded
		{ID: 6, Status: models.BookingConfirmed, TotalPrice: 1000, Persons: 1},
	}

	sum := AggregateSales(bookings, from, to)
	if sum.Count != 2 {
		t.Fatalf("count = %d, want 2", sum.Count)
	}
	if sum.TotalAmount != 18000 {
		t.Fatalf("total = %d, want 18000", sum.TotalAmount)
	}
	if sum.TotalPersons != 6 {
		t.Fatalf("persons = %d, want 6", sum.TotalPersons)
	}
	if len(sum.Rows) != 2 || sum.Rows[0].BookingID != 2 || sum.Rows[1].BookingID != 3 {
		t.Fatalf("rows should keep input order, got %+v", sum.Rows)
	}
}

func TestAggregateSales_SingleBookingWindow(t *testing.T) {
	from := time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local)
	bookings := []models.Booking{
		{ID: 10, PackageTitle: "Srimangal Tea Trails", Status: models.BookingConfirmed,
			TotalPrice: 10000, Persons: 2, CreatedAt: createdAt(2026, 1, 10, 10)},
	}
	sum := AggregateSales(bookings, from, to)
	if sum.Count != 1 || sum.TotalAmount != 10000 || sum.TotalPersons != 2 {
		t.Fatalf("got count=%d total=%d persons=%d", sum.Count, sum.TotalAmount, sum.TotalPersons)
	}
}

func TestAggregateSales_MissingTitleFallsBack(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Status: models.BookingPending, CreatedAt: createdAt(2026, 1, 5, 8)},
	}
	sum := AggregateSales(bookings, time.Time{}, time.Time{})
	if len(sum.Rows) != 1 || sum.Rows[0].PackageTitle != "N/A" {
		t.Fatalf("deleted package should render as N/A, got %+v", sum.Rows)
	}
}

func TestTopPackages_TiesKeepFirstSeenOrder(t *testing.T) {
	bookings := []models.Booking{
		{PackageID: 1, PackageTitle: "Cox's Bazar"},
		{PackageID: 2, PackageTitle: "Saint Martin"},
		{PackageID: 2, PackageTitle: "Saint Martin"},
		{PackageID: 3, PackageTitle: "Sundarban"},
		{PackageID: 1, PackageTitle: "Cox's Bazar"},
	}
	ranked := TopPackages(bookings, 5)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	// 1 and 2 both have two bookings; 1 was seen first
	if ranked[0].PackageID != 1 || ranked[1].PackageID != 2 || ranked[2].PackageID != 3 {
		t.Fatalf("tie-break broke first-seen order: %+v", ranked)
	}
	if ranked[0].Bookings != 2 || ranked[2].Bookings != 1 {
		t.Fatalf("counts wrong: %+v", ranked)
	}
}

func TestTopPackages_TruncatesAndDefaults(t *testing.T) {
	bookings := []models.Booking{}
	for id := int64(1); id <= 8; id++ {
		bookings = append(bookings, models.Booking{PackageID: id})
	}
	if got := TopPackages(bookings, 3); len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// non-positive limit falls back to 5
	if got := TopPackages(bookings, 0); len(got) != 5 {
		t.Fatalf("expected default of 5 entries, got %d", len(got))
	}
}

func TestWeeklyBuckets(t *testing.T) {
	keys := []string{"2026-01-04", "2026-01-11"}
	bookings := []models.Booking{
		{CreatedAt: createdAt(2026, 1, 6, 10)},  // week of Jan 4
		{CreatedAt: createdAt(2026, 1, 10, 22)}, // saturday, same week
		{CreatedAt: createdAt(2026, 1, 11, 1)},  // next week
		{CreatedAt: createdAt(2025, 12, 1, 1)},  // outside the chart
		{},                                      // no created_at
	}
	buckets := WeeklyBuckets(bookings, keys)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].WeekStart != "2026-01-04" || buckets[0].Bookings != 2 {
		t.Fatalf("first bucket wrong: %+v", buckets[0])
	}
	if buckets[1].WeekStart != "2026-01-11" || buckets[1].Bookings != 1 {
		t.Fatalf("second bucket wrong: %+v", buckets[1])
	}
}
