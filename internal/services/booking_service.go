package services

import (
	"strconv"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	RequestID   string
}

// BookingInput is the customer-facing booking submission.
type BookingInput struct {
	PackageID      int64  `json:"package_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Persons        int    `json:"persons"`
	TravelDate     string `json:"travel_date"`
	SpecialRequest string `json:"special_request"`
}

// Create validates the submission, snapshots the package title and price into
// the booking, and stores it pending on both axes.
func (s BookingService) Create(userID int64, in BookingInput) (models.Booking, error) {
	if in.PackageID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "package_id", Msg: "required"}
	}
	if in.Persons <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "persons", Msg: "must be positive"}
	}
	name := utils.NormalizeSpace(in.Name)
	if name == "" {
		return models.Booking{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	travelDate, err := utils.ParseDate(in.TravelDate)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "travel_date", Msg: "expected YYYY-MM-DD", Err: err}
	}

	pkg, err := s.PackageRepo.GetByID(in.PackageID)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		PackageID:      pkg.ID,
		UserID:         userID,
		PackageTitle:   pkg.Title,
		Name:           name,
		Email:          utils.TrimOrEmpty(in.Email),
		Phone:          utils.TrimOrEmpty(in.Phone),
		Persons:        in.Persons,
		TravelDate:     travelDate,
		Status:         models.BookingPending,
		PaymentStatus:  models.PaymentPending,
		TotalPrice:     pkg.Price * int64(in.Persons),
		SpecialRequest: utils.TrimOrEmpty(in.SpecialRequest),
		CreatedAt:      time.Now(),
	}

	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	b.ID = id
	utils.LogEvent(s.RequestID, "booking", "create",
		"booking_id="+strconv.FormatInt(id, 10)+" package_id="+strconv.FormatInt(pkg.ID, 10))
	return b, nil
}

// ChangeStatus applies an admin lifecycle change after checking the
// transition table. Payment status is never touched here.
func (s BookingService) ChangeStatus(id int64, to string) (models.Booking, error) {
	target, ok := models.ParseBookingStatus(to)
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}

	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.Status == target {
		return b, nil
	}
	if !b.Status.CanTransition(target) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      "cannot move from " + string(b.Status) + " to " + string(target),
		}
	}

	if err := s.BookingRepo.UpdateStatus(id, target); err != nil {
		return models.Booking{}, err
	}
	b.Status = target
	utils.LogEvent(s.RequestID, "booking", "status",
		"booking_id="+strconv.FormatInt(id, 10)+" status="+string(target))
	return b, nil
}
