package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

// PaymentService owns the gateway round-trip. It is the only writer of the
// booking payment_status axis; booking status stays an explicit admin action
// regardless of payment outcome.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	GatewayURL  string
	RequestID   string

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InitiateResult carries what the frontend needs to redirect the customer.
type InitiateResult struct {
	TranID      string `json:"tran_id"`
	Amount      int64  `json:"amount"`
	RedirectURL string `json:"redirect_url"`
}

// Initiate computes the amount due for a booking (group tours pay the advance
// percentage up front, individual tours pay the outstanding balance in full),
// records a pending payment attempt and returns the gateway redirect URL.
func (s PaymentService) Initiate(bookingID int64) (InitiateResult, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return InitiateResult{}, err
	}
	if b.Status == models.BookingCancelled {
		return InitiateResult{}, domain.ConflictError{Resource: "booking", Msg: "cancelled"}
	}
	if b.PaymentStatus.IsPaid() {
		return InitiateResult{}, domain.ConflictError{Resource: "payment", Msg: "already paid"}
	}

	outstanding := b.TotalPrice - b.PaidAmount
	if outstanding <= 0 {
		return InitiateResult{}, domain.ConflictError{Resource: "payment", Msg: "nothing outstanding"}
	}

	amount := outstanding
	if b.PaidAmount == 0 {
		// first payment: advance rules apply based on the package tour type
		tourType := models.TourIndividual
		advancePct := 0
		if pkg, err := s.PackageRepo.GetByID(b.PackageID); err == nil {
			tourType = pkg.TourType
			advancePct = pkg.AdvancePercent
		}
		amount = domain.AdvanceDue(b.TotalPrice, tourType, advancePct)
	}

	tranID := fmt.Sprintf("TRV-%d-%d", bookingID, s.now().UnixNano())
	p := models.Payment{
		BookingID: bookingID,
		TranID:    tranID,
		Amount:    amount,
		Status:    models.PaymentPending,
	}
	if _, err := s.PaymentRepo.Create(p); err != nil {
		return InitiateResult{}, domain.InternalError{Err: err}
	}

	redirect := s.GatewayURL
	if redirect != "" {
		redirect += "?tran_id=" + url.QueryEscape(tranID) + "&amount=" + strconv.FormatInt(amount, 10)
	}

	utils.LogEvent(s.RequestID, "payment", "initiate",
		"booking_id="+strconv.FormatInt(bookingID, 10)+" amount="+strconv.FormatInt(amount, 10))
	return InitiateResult{TranID: tranID, Amount: amount, RedirectURL: redirect}, nil
}

// Confirm handles the gateway success callback. It marks the payment attempt
// paid, accumulates the paid amount on the booking and advances
// payment_status to partially_paid or paid. Booking status is left alone.
func (s PaymentService) Confirm(tranID, method string) (models.Booking, error) {
	p, err := s.PaymentRepo.GetByTranID(tranID)
	if err != nil {
		return models.Booking{}, err
	}
	if p.Status.IsPaid() {
		// gateway retried the callback; nothing to do
		return s.BookingRepo.GetByID(p.BookingID)
	}

	b, err := s.BookingRepo.GetByID(p.BookingID)
	if err != nil {
		return models.Booking{}, err
	}

	newPaid := b.PaidAmount + p.Amount
	if newPaid > b.TotalPrice {
		newPaid = b.TotalPrice
	}
	target := models.PaymentPartiallyPaid
	if newPaid >= b.TotalPrice {
		target = models.PaymentPaid
	}
	if b.PaymentStatus != target && !b.PaymentStatus.CanTransition(target) {
		return models.Booking{}, domain.ConflictError{
			Resource: "payment",
			Msg:      "cannot move from " + string(b.PaymentStatus) + " to " + string(target),
		}
	}

	if err := s.PaymentRepo.UpdateStatus(p.ID, models.PaymentPaid, strings.TrimSpace(method)); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := s.BookingRepo.ApplyPayment(b.ID, target, newPaid); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	b.PaymentStatus = target
	b.PaidAmount = newPaid
	utils.LogEvent(s.RequestID, "payment", "confirm",
		"booking_id="+strconv.FormatInt(b.ID, 10)+" status="+string(target))
	return b, nil
}

// Fail handles the gateway failure callback: the attempt is marked failed and
// a booking still pending moves to failed. Partially paid bookings keep their
// progress; the customer can retry for the remainder.
func (s PaymentService) Fail(tranID string) error {
	p, err := s.PaymentRepo.GetByTranID(tranID)
	if err != nil {
		return err
	}
	if err := s.PaymentRepo.UpdateStatus(p.ID, models.PaymentFailed, ""); err != nil {
		return domain.InternalError{Err: err}
	}

	b, err := s.BookingRepo.GetByID(p.BookingID)
	if err != nil {
		return err
	}
	if b.PaymentStatus == models.PaymentPending {
		if err := s.BookingRepo.ApplyPayment(b.ID, models.PaymentFailed, b.PaidAmount); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	utils.LogEvent(s.RequestID, "payment", "fail", "booking_id="+strconv.FormatInt(p.BookingID, 10))
	return nil
}

// Cancel handles the customer abandoning the gateway page. The attempt is
// closed out; the booking keeps whatever payment state it had.
func (s PaymentService) Cancel(tranID string) error {
	p, err := s.PaymentRepo.GetByTranID(tranID)
	if err != nil {
		return err
	}
	if err := s.PaymentRepo.UpdateStatus(p.ID, models.PaymentFailed, "cancelled"); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "payment", "cancel", "booking_id="+strconv.FormatInt(p.BookingID, 10))
	return nil
}
