package routes

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-server/models"
)

func seedProviderAndCustomer(t *testing.T, env *testEnv) (*models.Provider, *models.Customer) {
	t.Helper()

	provider := &models.Provider{Name: "Groomer", Email: "g@x.com"}
	require.NoError(t, env.providers.Create(context.Background(), provider))

	customer := &models.Customer{Name: "Alice", Email: "alice@x.com"}
	require.NoError(t, env.customers.Create(context.Background(), customer))

	return provider, customer
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	env := newTestEnv(t)
	provider, customer := seedProviderAndCustomer(t, env)

	before := time.Now().Add(-time.Millisecond)
	w := env.do(t, http.MethodPost, "/book", gin.H{
		"providerId": provider.ID,
		"customerId": customer.ID,
		"service":    "Grooming",
		"days":       []string{"mon", "wed"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Booking successful", resp.Message)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, models.BookingStatusPending, resp.Booking.Status)
	assert.Equal(t, []string{"mon", "wed"}, []string(resp.Booking.Days))
	assert.False(t, resp.Booking.CreatedAt.Before(before))

	bookings, err := env.bookings.ListByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingStatusPending, bookings[0].Status)
}

func TestCreateBookingUnknownProvider(t *testing.T) {
	env := newTestEnv(t)
	_, customer := seedProviderAndCustomer(t, env)

	w := env.do(t, http.MethodPost, "/book", gin.H{
		"providerId": uuid.NewString(),
		"customerId": customer.ID,
		"service":    "Grooming",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	bookings, err := env.bookings.ListByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	provider, _ := seedProviderAndCustomer(t, env)

	w := env.do(t, http.MethodPost, "/book", gin.H{
		"providerId": provider.ID,
		"customerId": uuid.NewString(),
		"service":    "Grooming",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	bookings, err := env.bookings.ListByProvider(context.Background(), provider.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestProviderBookingsJoinCustomerName(t *testing.T) {
	env := newTestEnv(t)
	provider, customer := seedProviderAndCustomer(t, env)

	w := env.do(t, http.MethodPost, "/book", gin.H{
		"providerId": provider.ID,
		"customerId": customer.ID,
		"service":    "Walking",
		"days":       []string{"fri"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/provider/"+provider.ID+"/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []ProviderBookingResponse
	decodeBody(t, w, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Walking", out[0].Service)
	assert.Equal(t, customer.ID, out[0].CustomerID)
	assert.Equal(t, "Alice", out[0].CustomerName)
}

func TestProviderBookingsEmptyIsOKWithEmptyList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/provider/"+uuid.NewString()+"/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCustomerBookingsEmptyIsOKWithEmptyList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/customer/"+uuid.NewString()+"/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCustomerBookingsListsPendingBooking(t *testing.T) {
	env := newTestEnv(t)
	provider, customer := seedProviderAndCustomer(t, env)

	w := env.do(t, http.MethodPost, "/book", gin.H{
		"providerId": provider.ID,
		"customerId": customer.ID,
		"service":    "Grooming",
		"days":       []string{"mon", "wed"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/customer/"+customer.ID+"/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Booking
	decodeBody(t, w, &out)
	require.Len(t, out, 1)
	assert.Equal(t, models.BookingStatusPending, out[0].Status)
	assert.Equal(t, provider.ID, out[0].ProviderID)
}

func TestUpdateBookingStatus(t *testing.T) {
	env := newTestEnv(t)
	provider, customer := seedProviderAndCustomer(t, env)

	booking := &models.Booking{ProviderID: provider.ID, CustomerID: customer.ID, Service: "Grooming"}
	require.NoError(t, env.bookings.Create(context.Background(), booking))

	w := env.do(t, http.MethodPatch, "/booking/"+booking.ID, gin.H{"status": "Accepted"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	decodeBody(t, w, &updated)
	assert.Equal(t, booking.ID, updated.ID)
	assert.Equal(t, models.BookingStatusAccepted, updated.Status)

	stored, err := env.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, stored.Status)
}

func TestUpdateBookingStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	provider, customer := seedProviderAndCustomer(t, env)

	booking := &models.Booking{ProviderID: provider.ID, CustomerID: customer.ID}
	require.NoError(t, env.bookings.Create(context.Background(), booking))

	w := env.do(t, http.MethodPatch, "/booking/"+booking.ID, gin.H{"status": "Done"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := env.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestUpdateBookingStatusUnknownBooking(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPatch, "/booking/"+uuid.NewString(), gin.H{"status": "Accepted"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
