package services

import (
	"testing"
	"time"

	"travelbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReportsService_SalesReportWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	inWindow := time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)
	lastAfternoon := time.Date(2026, 1, 11, 16, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1").
		WithArgs("2026-01-04", "2026-01-11").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, 3, 12, "Cox's Bazar Beach Escape", "Rahim", "e", "p", 2, inWindow, "confirmed", "paid", 10000, 10000, "", inWindow).
			AddRow(2, 4, 13, "Sundarban Cruise", "Karim", "e", "p", 4, lastAfternoon, "pending", "pending", 8000, 0, "", lastAfternoon).
			AddRow(3, 3, 14, "Cox's Bazar Beach Escape", "Salma", "e", "p", 1, inWindow, "cancelled", "failed", 5000, 0, "", inWindow))

	svc := ReportsService{BookingRepo: repositories.BookingRepository{DB: db}}
	sum, err := svc.SalesReport(SalesReportFilter{StartDate: "2026-01-04", EndDate: "2026-01-11"})
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if sum.Count != 2 || sum.TotalAmount != 18000 || sum.TotalPersons != 6 {
		t.Fatalf("got count=%d total=%d persons=%d", sum.Count, sum.TotalAmount, sum.TotalPersons)
	}
}

func TestReportsService_WeeklyChart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// fixed "today": Tuesday 2026-01-13, so the chart covers
	// 2025-12-21 through the week of 2026-01-11
	ref := time.Date(2026, 1, 13, 9, 0, 0, 0, time.Local)
	wk1 := time.Date(2026, 1, 6, 10, 0, 0, 0, time.Local)  // week of Jan 4
	wk2 := time.Date(2026, 1, 12, 10, 0, 0, 0, time.Local) // week of Jan 11
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1").
		WithArgs("2025-12-21").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, 1, 1, "a", "n", "e", "p", 1, wk1, "pending", "pending", 100, 0, "", wk1).
			AddRow(2, 1, 1, "a", "n", "e", "p", 1, wk1, "confirmed", "paid", 100, 100, "", wk1).
			AddRow(3, 1, 1, "a", "n", "e", "p", 1, wk2, "pending", "pending", 100, 0, "", wk2))

	svc := ReportsService{
		BookingRepo: repositories.BookingRepository{DB: db},
		Now:         func() time.Time { return ref },
	}
	buckets, err := svc.WeeklyChart()
	if err != nil {
		t.Fatalf("WeeklyChart returned error: %v", err)
	}
	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}
	if buckets[0].WeekStart != "2025-12-21" || buckets[3].WeekStart != "2026-01-11" {
		t.Fatalf("unexpected bucket keys: %+v", buckets)
	}
	if buckets[2].Bookings != 2 || buckets[3].Bookings != 1 {
		t.Fatalf("unexpected counts: %+v", buckets)
	}
}

func TestReportsService_TopPackages(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, 3, 1, "Cox's Bazar", "n", "e", "p", 1, now, "pending", "pending", 100, 0, "", now).
			AddRow(2, 4, 1, "Saint Martin", "n", "e", "p", 1, now, "pending", "pending", 100, 0, "", now).
			AddRow(3, 3, 1, "Cox's Bazar", "n", "e", "p", 1, now, "pending", "pending", 100, 0, "", now))

	svc := ReportsService{BookingRepo: repositories.BookingRepository{DB: db}}
	ranked, err := svc.TopPackages(5)
	if err != nil {
		t.Fatalf("TopPackages returned error: %v", err)
	}
	if len(ranked) != 2 || ranked[0].PackageID != 3 || ranked[0].Bookings != 2 {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
}
