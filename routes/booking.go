package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// BookingRequest represents a booking creation request
type BookingRequest struct {
	ProviderID string   `json:"providerId" binding:"required"`
	CustomerID string   `json:"customerId" binding:"required"`
	Service    string   `json:"service"`
	Days       []string `json:"days"`
}

// UpdateBookingStatusRequest represents a booking status update
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProviderBookingResponse is a booking with the customer's name resolved,
// as shown on the provider's dashboard
type ProviderBookingResponse struct {
	models.Booking
	CustomerName string `json:"customerName"`
}

// createBooking persists a new booking with status Pending. Both referenced
// accounts must exist; dangling references are rejected instead of stored.
func (h *Handler) createBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if _, err := h.providers.GetByID(c.Request.Context(), req.ProviderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Provider not found",
				"message": "No provider exists with the given providerId",
			})
			return
		}
		log.Printf("❌ Failed to look up provider %s: %v", req.ProviderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking failed",
			"message": "Error processing booking",
		})
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Customer not found",
				"message": "No customer exists with the given customerId",
			})
			return
		}
		log.Printf("❌ Failed to look up customer %s: %v", req.CustomerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking failed",
			"message": "Error processing booking",
		})
		return
	}

	booking := models.Booking{
		ProviderID: req.ProviderID,
		CustomerID: req.CustomerID,
		Service:    req.Service,
		Days:       req.Days,
		Status:     models.BookingStatusPending,
	}
	if err := h.bookings.Create(c.Request.Context(), &booking); err != nil {
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking failed",
			"message": "Error processing booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking successful",
		"booking": booking,
	})
}

// providerBookings lists bookings for a provider with each customer's name
// resolved. Empty result is 200 with an empty list.
func (h *Handler) providerBookings(c *gin.Context) {
	providerID := c.Param("providerId")

	bookings, err := h.bookings.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		log.Printf("❌ Failed to fetch bookings for provider %s: %v", providerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking lookup failed",
			"message": "Error fetching bookings",
		})
		return
	}

	out := make([]ProviderBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp := ProviderBookingResponse{Booking: booking}
		// Tolerate dangling customer references on historic rows: the
		// booking is still listed, just without a name.
		if customer, err := h.customers.GetByID(c.Request.Context(), booking.CustomerID); err == nil {
			resp.CustomerName = customer.Name
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("❌ Failed to resolve customer %s: %v", booking.CustomerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Booking lookup failed",
				"message": "Error fetching bookings",
			})
			return
		}
		out = append(out, resp)
	}

	c.JSON(http.StatusOK, out)
}

// customerBookings lists bookings for a customer. Empty result is 200 with
// an empty list.
func (h *Handler) customerBookings(c *gin.Context) {
	customerID := c.Param("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing customer id",
			"message": "Customer ID is required",
		})
		return
	}

	bookings, err := h.bookings.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("❌ Failed to fetch bookings for customer %s: %v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking lookup failed",
			"message": "Error fetching bookings",
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// updateBookingStatus sets a booking's status to the submitted value and
// returns the updated record. The value must be one of Pending, Accepted or
// Rejected; transitions between valid values are otherwise unrestricted.
func (h *Handler) updateBookingStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	status := models.BookingStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid status",
			"message": "status must be one of Pending, Accepted, Rejected",
		})
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), bookingID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Booking not found",
				"message": "No booking exists with the given id",
			})
			return
		}
		log.Printf("❌ Failed to update booking %s: %v", bookingID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking update failed",
			"message": "Error updating booking status",
		})
		return
	}

	c.JSON(http.StatusOK, booking)
}
