package routes

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-server/models"
)

func TestListProvidersReturnsFullSet(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		provider := &models.Provider{
			Name:  fmt.Sprintf("Provider %d", i),
			Email: fmt.Sprintf("p%d@x.com", i),
		}
		require.NoError(t, env.providers.Create(context.Background(), provider))
	}

	w := env.do(t, http.MethodGet, "/providers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Provider
	decodeBody(t, w, &out)
	assert.Len(t, out, 3)
}

func TestListCustomersReturnsFullSet(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		customer := &models.Customer{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("c%d@x.com", i),
		}
		require.NoError(t, env.customers.Create(context.Background(), customer))
	}

	w := env.do(t, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Customer
	decodeBody(t, w, &out)
	assert.Len(t, out, 2)
}

func TestListProvidersEmptyIsOKWithEmptyList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/providers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestContactStoresMessage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/contact", gin.H{
		"name":    "A",
		"email":   "a@x.com",
		"message": "Do you board cats?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	messages := env.contacts.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "Do you board cats?", messages[0].Message)
	assert.Equal(t, "a@x.com", messages[0].Email)
}
