package handlers

import (
	"net/http"
	"strings"

	"travelbook/internal/http/middleware"
	"travelbook/internal/repositories"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		GatewayURL: env.PaymentGatewayURL,
		RequestID:  middleware.GetRequestID(c),
	}
}

type initiateRequest struct {
	BookingID int64 `json:"booking_id"`
}

// POST /api/payments/initiate (owner or admin)
func InitiatePayment(c *gin.Context) {
	var req initiateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := repositories.BookingRepository{}.GetByID(req.BookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if middleware.GetUserRole(c) != "admin" && booking.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	result, err := paymentService(c).Initiate(req.BookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/bookings/:id/payments (owner or admin)
func GetBookingPayments(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	bookingRepo := repositories.BookingRepository{}
	booking, err := bookingRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if middleware.GetUserRole(c) != "admin" && booking.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	payRepo := repositories.PaymentRepository{}
	payments, err := payRepo.ListByBooking(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load payments", err)
		return
	}
	totalPaid, err := payRepo.SumPaidByBooking(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to total payments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payments":    payments,
		"total_paid":  totalPaid,
		"total_price": booking.TotalPrice,
	})
}

func callbackTranID(c *gin.Context) (string, bool) {
	tranID := strings.TrimSpace(c.Query("tran_id"))
	if tranID == "" {
		tranID = strings.TrimSpace(c.PostForm("tran_id"))
	}
	if tranID == "" {
		RespondError(c, http.StatusBadRequest, "tran_id required", nil)
		return "", false
	}
	return tranID, true
}

// PaymentSuccess is the gateway success callback; it is the only path that
// advances a booking's payment_status forward. The customer is then sent
// back to the frontend.
// GET|POST /api/payments/success
func PaymentSuccess(c *gin.Context) {
	tranID, ok := callbackTranID(c)
	if !ok {
		return
	}
	method := strings.TrimSpace(c.Query("method"))
	if method == "" {
		method = strings.TrimSpace(c.PostForm("method"))
	}
	if _, err := paymentService(c).Confirm(tranID, method); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, env.PaymentSuccessURL)
}

// GET|POST /api/payments/fail
func PaymentFail(c *gin.Context) {
	tranID, ok := callbackTranID(c)
	if !ok {
		return
	}
	if err := paymentService(c).Fail(tranID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, env.PaymentFailURL)
}

// GET|POST /api/payments/cancel
func PaymentCancel(c *gin.Context) {
	tranID, ok := callbackTranID(c)
	if !ok {
		return
	}
	if err := paymentService(c).Cancel(tranID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, env.PaymentCancelURL)
}
