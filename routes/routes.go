package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-care-server/middleware"
	"pet-care-server/repository"
	"pet-care-server/services"
)

// Handler owns the HTTP surface. Repositories and the session service are
// injected so tests can run against the in-memory implementations.
type Handler struct {
	customers repository.CustomerRepository
	providers repository.ProviderRepository
	contacts  repository.ContactRepository
	bookings  repository.BookingRepository
	sessions  *services.SessionService
}

// NewHandler creates the route handler with its dependencies
func NewHandler(
	customers repository.CustomerRepository,
	providers repository.ProviderRepository,
	contacts repository.ContactRepository,
	bookings repository.BookingRepository,
	sessions *services.SessionService,
) *Handler {
	return &Handler{
		customers: customers,
		providers: providers,
		contacts:  contacts,
		bookings:  bookings,
		sessions:  sessions,
	}
}

// Register registers all API routes. authGuards (rate limiting in
// production) are applied to the signup and login endpoints only.
func (h *Handler) Register(router *gin.Engine, authGuards ...gin.HandlerFunc) {
	auth := router.Group("")
	auth.Use(authGuards...)
	auth.POST("/signup", h.signUp)
	auth.POST("/login", h.login)

	router.POST("/logout", h.logout)
	router.POST("/test", h.test)
	router.POST("/contact", h.submitContact)

	router.GET("/profile", middleware.SessionAuth(h.sessions), h.profile)

	router.GET("/providers", h.listProviders)
	router.GET("/customers", h.listCustomers)

	router.POST("/book", h.createBooking)
	router.GET("/provider/:providerId/bookings", h.providerBookings)
	router.GET("/customer/:customerId/bookings", h.customerBookings)
	router.PATCH("/booking/:bookingId", h.updateBookingStatus)
}

// test is the connectivity probe used by the frontend
func (h *Handler) test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Server is running",
	})
}
