package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-care-server/models"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact persists a contact form message. Fire-and-forget: there is
// no read-side endpoint.
func (h *Handler) submitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.contacts.Create(c.Request.Context(), &contact); err != nil {
		log.Printf("❌ Failed to save contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Contact submission failed",
			"message": "Server error. Unable to send message.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
	})
}
