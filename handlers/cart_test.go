package handlers_test

import (
	"net/http"
	"testing"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListCart(t *testing.T) {
	r := setupRouter(t)
	salad, dessert := seedMenu(t)
	_, token := createUser(t, "maria", false, models.RoleCustomer)

	w := doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": salad.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": dessert.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int           `json:"count"`
		Cart  []models.Cart `json:"cart"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 2, resp.Count)

	// insertion order, with unit price snapshotted and line totals computed
	assert.Equal(t, salad.ID, resp.Cart[0].MenuItemID)
	assert.True(t, resp.Cart[0].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, resp.Cart[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, dessert.ID, resp.Cart[1].MenuItemID)
	assert.True(t, resp.Cart[1].Price.Equal(decimal.RequireFromString("3.00")))
}

func TestCartScopedToCaller(t *testing.T) {
	r := setupRouter(t)
	salad, _ := seedMenu(t)
	_, mariaToken := createUser(t, "maria", false, models.RoleCustomer)
	_, lucaToken := createUser(t, "luca", false, models.RoleCustomer)

	w := doRequest(r, http.MethodPost, "/cart/", mariaToken, map[string]any{
		"menuitem": salad.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/cart/", lucaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 0, resp.Count)

	// clearing luca's empty cart must not touch maria's
	w = doRequest(r, http.MethodDelete, "/cart/", lucaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var n int64
	config.DB.Model(&models.Cart{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestAddToCartValidation(t *testing.T) {
	r := setupRouter(t)
	salad, _ := seedMenu(t)
	_, token := createUser(t, "maria", false, models.RoleCustomer)

	w := doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": salad.ID, "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": salad.ID, "quantity": -3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": 9999, "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	config.DB.Model(&models.Cart{}).Count(&n)
	assert.EqualValues(t, 0, n)
}

func TestClearCartIdempotent(t *testing.T) {
	r := setupRouter(t)
	salad, _ := seedMenu(t)
	user, token := createUser(t, "maria", false, models.RoleCustomer)

	w := doRequest(r, http.MethodPost, "/cart/", token, map[string]any{
		"menuitem": salad.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/cart/", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodDelete, "/cart/", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	config.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&n)
	assert.EqualValues(t, 0, n)
}
