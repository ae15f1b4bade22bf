package handlers

import (
	"net/http"

	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/repositories"
	"travelbook/internal/services"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings (authenticated customer)
func CreateBooking(c *gin.Context) {
	var req services.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Create(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings?status= (admin)
func GetBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	bookings, err := repo.List(c.Query("status"), 0)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/my (authenticated customer)
func GetMyBookings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	repo := repositories.BookingRepository{}
	bookings, err := repo.List("", userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BookingRepository{}
	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// customers only see their own bookings; admins see everything
	if middleware.GetUserRole(c) != "admin" && booking.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

type statusRequest struct {
	Status string `json:"status"`
}

// PUT /api/bookings/:id/status (admin)
func UpdateBookingStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.ChangeStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type bookingUpdateRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Persons        *int    `json:"persons"`
	TravelDate     *string `json:"travel_date"`
	SpecialRequest *string `json:"special_request"`
}

// PUT /api/bookings/:id (admin). Contact/detail fields only; status and
// payment fields have their own paths.
func UpdateBooking(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req bookingUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	upd := models.BookingUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Persons:        req.Persons,
		SpecialRequest: req.SpecialRequest,
	}
	if req.TravelDate != nil {
		d, err := utils.ParseDate(*req.TravelDate)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "travel_date expected as YYYY-MM-DD", err)
			return
		}
		upd.TravelDate = &d
	}
	if req.Persons != nil && *req.Persons <= 0 {
		RespondError(c, http.StatusBadRequest, "persons must be positive", nil)
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Update(id, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id (admin)
func DeleteBooking(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BookingRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// GET /api/bookings/:id/invoice (PDF, owner or admin)
func GetBookingInvoicePDF(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	booking, err := repositories.BookingRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// the invoice carries the customer contact snapshot; same visibility
	// rule as the booking itself
	if middleware.GetUserRole(c) != "admin" && booking.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	svc := services.DocsService{
		RequestID:     middleware.GetRequestID(c),
		BookingLoader: func(int64) (models.Booking, error) { return booking, nil },
	}
	pdf, filename, err := svc.BookingInvoicePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
