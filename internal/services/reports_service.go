package services

import (
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

const chartWeeks = 4

type SalesReportFilter struct {
	StartDate string
	EndDate   string
}

type ReportsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SalesReport aggregates bookings created within the filter window. Dates
// that fail to parse are treated as open bounds rather than errors.
func (s ReportsService) SalesReport(f SalesReportFilter) (domain.SalesSummary, error) {
	bookings, err := s.BookingRepo.ListByCreatedRange(f.StartDate, f.EndDate)
	if err != nil {
		return domain.SalesSummary{}, err
	}

	var from, to time.Time
	if t, err := utils.ParseDate(f.StartDate); err == nil {
		from = t
	}
	if t, err := utils.ParseDate(f.EndDate); err == nil {
		to = t
	}
	return domain.AggregateSales(bookings, from, to), nil
}

// TopPackages ranks packages by booking count across all bookings.
func (s ReportsService) TopPackages(n int) ([]domain.PackageCount, error) {
	bookings, err := s.BookingRepo.ListByCreatedRange("", "")
	if err != nil {
		return nil, err
	}
	return domain.TopPackages(bookings, n), nil
}

// WeeklyChart buckets recent bookings into the fixed 4-week chart window
// ending with the current week.
func (s ReportsService) WeeklyChart() ([]domain.WeekBucket, error) {
	ref := s.now()
	keys := utils.WeekStarts(ref, chartWeeks)

	// fetch from the first bucket's Sunday onward; older rows are irrelevant
	bookings, err := s.BookingRepo.ListByCreatedRange(keys[0], "")
	if err != nil {
		return nil, err
	}
	return domain.WeeklyBuckets(bookings, keys), nil
}
