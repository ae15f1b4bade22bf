package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelbook/internal/config"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)
	secret := []byte(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Packages (public browse)
		api.GET("/packages", h.GetPackages)
		api.GET("/packages/:id", h.GetPackageByID)
		api.GET("/packages/:id/reviews", h.GetPackageReviews)
		api.GET("/domestic/:place", h.GetDomesticByPlace)
		api.GET("/budget/:place", h.GetBudgetByPlace)
		api.GET("/international/:country", h.GetInternationalByCountry)

		// Site content (public read)
		api.GET("/countries", h.GetCountries)
		api.GET("/gallery", h.GetGallery)
		api.GET("/pages/:slug", h.GetPageContent)

		// Contact form
		api.POST("/queries", h.CreateQuery)

		// Gateway callbacks carry the transaction id, not a session
		api.POST("/payments/success", h.PaymentSuccess)
		api.GET("/payments/success", h.PaymentSuccess)
		api.POST("/payments/fail", h.PaymentFail)
		api.GET("/payments/fail", h.PaymentFail)
		api.POST("/payments/cancel", h.PaymentCancel)
		api.GET("/payments/cancel", h.PaymentCancel)

		// Customer routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(secret))
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings/my", h.GetMyBookings)
			authed.GET("/bookings/:id", h.GetBookingByID)
			authed.GET("/bookings/:id/invoice", h.GetBookingInvoicePDF)
			authed.GET("/bookings/:id/payments", h.GetBookingPayments)
			authed.GET("/bookings/:id/can-review", h.CanReviewBooking)
			authed.POST("/payments/initiate", h.InitiatePayment)
			authed.POST("/reviews", h.CreateReview)
			authed.GET("/reviews/my", h.GetMyReviews)
		}

		// Admin routes
		admin := api.Group("")
		admin.Use(middleware.RequireAuth(secret), middleware.RequireRoles("admin"))
		{
			admin.GET("/bookings", h.GetBookings)
			admin.PUT("/bookings/:id", h.UpdateBooking)
			admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
			admin.DELETE("/bookings/:id", h.DeleteBooking)

			admin.POST("/packages", h.CreatePackage)
			admin.PUT("/packages/:id", h.UpdatePackage)
			admin.DELETE("/packages/:id", h.DeletePackage)

			admin.GET("/reviews", h.GetReviews)
			admin.PUT("/reviews/:id/approve", h.ApproveReview)
			admin.DELETE("/reviews/:id", h.DeleteReview)

			admin.GET("/queries", h.GetQueries)
			admin.DELETE("/queries/:id", h.DeleteQuery)

			admin.POST("/countries", h.CreateCountry)
			admin.PUT("/countries/:id", h.UpdateCountry)
			admin.DELETE("/countries/:id", h.DeleteCountry)
			admin.POST("/gallery", h.CreateGalleryImage)
			admin.DELETE("/gallery/:id", h.DeleteGalleryImage)
			admin.PUT("/pages/:slug", h.UpsertPageContent)

			admin.GET("/users", h.GetUsers)
			admin.GET("/users/:id", h.GetUserByID)
			admin.POST("/users", h.CreateUser)
			admin.PUT("/users/:id", h.UpdateUser)
			admin.DELETE("/users/:id", h.DeleteUser)

			admin.GET("/reports/sales", h.GetSalesReport)
			admin.GET("/reports/sales/pdf", h.GetSalesReportPDF)
			admin.GET("/reports/top-packages", h.GetTopPackages)
			admin.GET("/reports/weekly", h.GetWeeklyChart)
		}
	}

	return r
}
