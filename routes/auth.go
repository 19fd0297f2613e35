package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-care-server/config"
	"pet-care-server/models"
	"pet-care-server/repository"
	"pet-care-server/utils"
)

// SignUpRequest carries the user-type discriminator plus the flat superset
// of customer and provider profile fields. Fields that do not apply to the
// chosen type are ignored.
type SignUpRequest struct {
	UserType string `json:"userType" binding:"required"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Location string `json:"location"`
	Password string `json:"password"`

	// Pet owner fields
	Species        string `json:"species"`
	Breed          string `json:"breed"`
	Age            string `json:"age"`
	Weight         string `json:"weight"`
	MedicalHistory string `json:"medicalHistory"`
	Allergies      string `json:"allergies"`
	PreferredFood  string `json:"preferredFood"`
	Behavior       string `json:"behavior"`
	Temperament    string `json:"temperament"`

	// Pet care provider fields
	Experience      string              `json:"experience"`
	Certifications  string              `json:"certifications"`
	ServicesOffered []string            `json:"servicesOffered"`
	Availability    models.Availability `json:"availability"`
	Charges         string              `json:"charges"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	UserType string `json:"userType" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// signUp handles account registration for both user types
func (h *Handler) signUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	userType := models.UserType(req.UserType)
	if !userType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid user type",
			"message": "userType must be petOwner or petCareProvider",
		})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	// No uniqueness check on email: duplicate signups are allowed and login
	// scans all accounts sharing the address.
	switch userType {
	case models.UserTypePetOwner:
		customer := models.Customer{
			Name:           req.Name,
			Email:          req.Email,
			Contact:        req.Contact,
			Location:       req.Location,
			PasswordHash:   hashedPassword,
			Species:        req.Species,
			Breed:          req.Breed,
			Age:            req.Age,
			Weight:         req.Weight,
			MedicalHistory: req.MedicalHistory,
			Allergies:      req.Allergies,
			PreferredFood:  req.PreferredFood,
			Behavior:       req.Behavior,
			Temperament:    req.Temperament,
		}
		if err := h.customers.Create(c.Request.Context(), &customer); err != nil {
			log.Printf("❌ Failed to create customer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "User creation failed",
				"message": "Failed to create customer account",
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Customer created successfully",
			"id":      customer.ID,
		})

	case models.UserTypePetCareProvider:
		provider := models.Provider{
			Name:            req.Name,
			Email:           req.Email,
			Contact:         req.Contact,
			Location:        req.Location,
			PasswordHash:    hashedPassword,
			Experience:      req.Experience,
			Certifications:  req.Certifications,
			ServicesOffered: req.ServicesOffered,
			Availability:    req.Availability,
			Charges:         req.Charges,
		}
		if err := h.providers.Create(c.Request.Context(), &provider); err != nil {
			log.Printf("❌ Failed to create provider: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "User creation failed",
				"message": "Failed to create provider account",
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Provider created successfully",
			"id":      provider.ID,
		})
	}
}

// login authenticates an account and establishes a cookie session. The
// session is written to the store and the cookie set before the response
// body goes out.
func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	userType := models.UserType(req.UserType)
	if !userType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid user type",
			"message": "userType must be petOwner or petCareProvider",
		})
		return
	}

	// Email is not unique, so fetch every account with the address and scan
	// for a password match.
	var (
		found  bool
		userID string
		user   any
	)

	switch userType {
	case models.UserTypePetOwner:
		accounts, err := h.customers.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			log.Printf("❌ Failed to look up customers by email: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Login failed",
				"message": "Server error",
			})
			return
		}
		found = len(accounts) > 0
		for i := range accounts {
			if utils.CheckPasswordHash(req.Password, accounts[i].PasswordHash) {
				userID = accounts[i].ID
				user = accounts[i]
				break
			}
		}

	case models.UserTypePetCareProvider:
		accounts, err := h.providers.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			log.Printf("❌ Failed to look up providers by email: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Login failed",
				"message": "Server error",
			})
			return
		}
		found = len(accounts) > 0
		for i := range accounts {
			if utils.CheckPasswordHash(req.Password, accounts[i].PasswordHash) {
				userID = accounts[i].ID
				user = accounts[i]
				break
			}
		}
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"message": "No account exists with this email",
		})
		return
	}

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication failed",
			"message": "Invalid password",
		})
		return
	}

	session, err := h.sessions.Issue(c.Request.Context(), userID, userType)
	if err != nil {
		log.Printf("❌ Failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Login failed",
			"message": "Failed to establish session",
		})
		return
	}

	sessionCfg := config.AppConfig.Session
	c.SetCookie(sessionCfg.CookieName, session.ID, sessionCfg.TTLHours*3600, "/", "", sessionCfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// logout revokes the server-side session and clears the cookie
func (h *Handler) logout(c *gin.Context) {
	sessionCfg := config.AppConfig.Session

	if sessionID, err := c.Cookie(sessionCfg.CookieName); err == nil && sessionID != "" {
		if err := h.sessions.Revoke(c.Request.Context(), sessionID); err != nil {
			log.Printf("❌ Failed to revoke session: %v", err)
		}
	}

	c.SetCookie(sessionCfg.CookieName, "", -1, "/", "", sessionCfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}

// profile returns the record of the logged-in account. The password hash is
// excluded from the JSON encoding of both models.
func (h *Handler) profile(c *gin.Context) {
	value, exists := c.Get("session")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not logged in",
			"message": "Please log in to access your profile",
		})
		return
	}
	session := value.(*models.Session)

	var (
		user any
		err  error
	)
	switch session.UserType {
	case models.UserTypePetOwner:
		user, err = h.customers.GetByID(c.Request.Context(), session.UserID)
	case models.UserTypePetCareProvider:
		user, err = h.providers.GetByID(c.Request.Context(), session.UserID)
	default:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not logged in",
			"message": "Session is invalid or expired",
		})
		return
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "User not found",
				"message": "Account associated with this session no longer exists",
			})
			return
		}
		log.Printf("❌ Failed to load profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Profile lookup failed",
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
