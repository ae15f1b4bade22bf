package services

import (
	"strconv"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

type ReviewService struct {
	ReviewRepo  repositories.ReviewRepository
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	RequestID   string

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s ReviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type ReviewInput struct {
	BookingID int64  `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// CanReview re-checks eligibility server-side for one booking: paid, tour
// finished, no review yet, and the booking belongs to the user.
func (s ReviewService) CanReview(userID, bookingID int64) (bool, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return false, err
	}
	if b.UserID != userID {
		return false, nil
	}

	// package may be gone; a zero package means zero duration, i.e. the tour
	// counts as finished once the travel date passes
	pkg, err := s.PackageRepo.GetByID(b.PackageID)
	if err != nil && !domain.IsNotFound(err) {
		return false, err
	}

	existing, err := s.ReviewRepo.GetByBookingID(bookingID)
	if err != nil {
		return false, err
	}
	var prior []models.Review
	if existing.ID != 0 {
		prior = []models.Review{existing}
	}

	return domain.CanReview(b, pkg, prior, s.now()), nil
}

// Create stores a review after the full eligibility and input checks.
func (s ReviewService) Create(userID int64, in ReviewInput) (models.Review, error) {
	if err := domain.ValidateReviewInput(in.Rating, in.Comment); err != nil {
		return models.Review{}, err
	}

	b, err := s.BookingRepo.GetByID(in.BookingID)
	if err != nil {
		return models.Review{}, err
	}
	if b.UserID != userID {
		return models.Review{}, domain.ValidationError{Field: "booking_id", Msg: "not your booking"}
	}

	ok, err := s.CanReview(userID, in.BookingID)
	if err != nil {
		return models.Review{}, err
	}
	if !ok {
		return models.Review{}, domain.ConflictError{Resource: "review", Msg: "booking not eligible for review"}
	}

	rev := models.Review{
		BookingID: in.BookingID,
		PackageID: b.PackageID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   utils.TrimOrEmpty(in.Comment),
	}
	id, err := s.ReviewRepo.Create(rev)
	if err != nil {
		// unique key on booking_id catches the race two tabs can produce
		return models.Review{}, domain.ConflictError{Resource: "review", Msg: "review already exists", Err: err}
	}
	rev.ID = id
	utils.LogEvent(s.RequestID, "review", "create",
		"booking_id="+strconv.FormatInt(in.BookingID, 10)+" rating="+strconv.Itoa(in.Rating))
	return rev, nil
}
