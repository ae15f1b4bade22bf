package handlers

import (
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/repositories"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/reviews (authenticated customer)
func CreateReview(c *gin.Context) {
	var req services.ReviewInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.ReviewService{RequestID: middleware.GetRequestID(c)}
	review, err := svc.Create(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GET /api/bookings/:id/can-review (authenticated customer)
func CanReviewBooking(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := services.ReviewService{RequestID: middleware.GetRequestID(c)}
	eligible, err := svc.CanReview(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_review": eligible})
}

// GET /api/packages/:id/reviews (public, approved only)
func GetPackageReviews(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.ReviewRepository{}
	reviews, err := repo.ListByPackage(id, true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/my (authenticated customer)
func GetMyReviews(c *gin.Context) {
	repo := repositories.ReviewRepository{}
	reviews, err := repo.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews (admin moderation)
func GetReviews(c *gin.Context) {
	repo := repositories.ReviewRepository{}
	reviews, err := repo.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type approveRequest struct {
	Approved bool `json:"approved"`
}

// PUT /api/reviews/:id/approve (admin)
func ApproveReview(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req approveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ReviewRepository{}
	if err := repo.SetApproved(id, req.Approved); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review updated"})
}

// DELETE /api/reviews/:id (admin)
func DeleteReview(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.ReviewRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
