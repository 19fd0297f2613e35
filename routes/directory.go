package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// listProviders returns every provider, unfiltered and unpaginated
func (h *Handler) listProviders(c *gin.Context) {
	providers, err := h.providers.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch providers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Directory lookup failed",
			"message": "Error fetching providers",
		})
		return
	}

	c.JSON(http.StatusOK, providers)
}

// listCustomers returns every customer, unfiltered and unpaginated
func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Directory lookup failed",
			"message": "Error fetching customers",
		})
		return
	}

	c.JSON(http.StatusOK, customers)
}
