package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batoolzehra/car-rental-system/internal/config"
	"github.com/batoolzehra/car-rental-system/internal/handler"
	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
	"github.com/batoolzehra/car-rental-system/internal/router"
	"github.com/batoolzehra/car-rental-system/internal/service"
	"github.com/batoolzehra/car-rental-system/internal/storage"
	"github.com/batoolzehra/car-rental-system/internal/validation"
)

// newAPI wires the full route table over a temp data directory, without
// Redis or the broker consumer.
func newAPI(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		Env:          "test",
		Port:         "0",
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		AdminUser:    "admin",
		AdminPass:    "admin123",
		AdminBalance: 1000,
	}

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	users := repository.NewUserRepo(store)
	cars := repository.NewCarRepo(store)
	rentals := repository.NewRentalRepo(store)
	feedback := repository.NewFeedbackRepo(store)

	require.NoError(t, cars.Append(&model.Car{Brand: "Toyota", Model: "Corolla", SeatingCapacity: 5, RentalPricePerDay: 40, IsAvailable: true}))

	auth := service.NewAuthService(users, service.AdminProfile{Username: cfg.AdminUser, Password: cfg.AdminPass, Balance: cfg.AdminBalance})
	fleet := service.NewFleetService(cars)
	rentalSvc := service.NewRentalService(store, users, cars, rentals)
	feedbackSvc := service.NewFeedbackService(rentals, feedback)

	e := echo.New()
	e.Validator = validation.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, auth), cfg.JWTSecret)
	router.RegisterPublic(e, &handler.PublicHandler{Fleet: fleet})
	router.RegisterCustomer(e, handler.NewCustomerHandler(rentalSvc, feedbackSvc, auth), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(fleet, rentalSvc, feedbackSvc, auth), cfg.JWTSecret)
	return e
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/register", "", `{
		"username":"alice","password":"pw123","first_name":"Alice",
		"last_name":"Smith","address":"12 Oak Lane","balance":"500"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return tokenFrom(t, rec)
}

func loginAdmin(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return tokenFrom(t, rec)
}

func tokenFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

func TestHealthz(t *testing.T) {
	rec := do(newAPI(t), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicBrowse(t *testing.T) {
	rec := do(newAPI(t), http.MethodGet, "/v1/cars", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corolla")
}

func TestRegisterLoginAndMe(t *testing.T) {
	e := newAPI(t)
	token := register(t, e)

	rec := do(e, http.MethodGet, "/v1/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"balance":500`)

	rec = do(e, http.MethodPost, "/v1/auth/login", "", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_DuplicateConflicts(t *testing.T) {
	e := newAPI(t)
	register(t, e)

	rec := do(e, http.MethodPost, "/v1/auth/register", "", `{
		"username":"ALICE","password":"x","first_name":"A",
		"last_name":"B","address":"C","balance":"1"
	}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRentAndReturnFlow(t *testing.T) {
	e := newAPI(t)
	token := register(t, e)

	rec := do(e, http.MethodPost, "/v1/cars/Corolla/rent", token, `{"days":2,"payment_method":"cash"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_amount":80`)

	// rented out, so the public listing is now empty
	rec = do(e, http.MethodGet, "/v1/cars", "", "")
	assert.NotContains(t, rec.Body.String(), "Corolla")

	rec = do(e, http.MethodGet, "/v1/my-rentals", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ongoing")

	rec = do(e, http.MethodPost, "/v1/cars/corolla/return", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"late_fee":0`)

	rec = do(e, http.MethodPost, "/v1/cars/corolla/return", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRent_PaymentRejected(t *testing.T) {
	e := newAPI(t)
	token := register(t, e)

	rec := do(e, http.MethodPost, "/v1/cars/Corolla/rent", token, `{
		"days":1,"payment_method":"credit card","card_number":"123","expiry":"12/27","cvv":"123"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFeedbackFlow(t *testing.T) {
	e := newAPI(t)
	token := register(t, e)

	rec := do(e, http.MethodPost, "/v1/feedback", token, `{"car_model":"Corolla","text":"nice"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "feedback requires a rental")

	do(e, http.MethodPost, "/v1/cars/Corolla/rent", token, `{"days":1,"payment_method":"cash"}`)
	rec = do(e, http.MethodPost, "/v1/feedback", token, `{"car_model":"Corolla","text":"nice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"text":"nice"`)

	admin := loginAdmin(t, e)
	rec = do(e, http.MethodGet, "/v1/admin/feedback", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"nice"`)
}

func TestAdminRoutes(t *testing.T) {
	e := newAPI(t)
	customer := register(t, e)
	admin := loginAdmin(t, e)

	rec := do(e, http.MethodPost, "/v1/admin/cars", customer, `{"brand":"Honda","model":"Civic","seating_capacity":5,"rental_price_per_day":45}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/v1/admin/cars", admin, `{"brand":"Honda","model":"Civic","seating_capacity":5,"rental_price_per_day":45}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	do(e, http.MethodPost, "/v1/cars/Civic/rent", customer, `{"days":1,"payment_method":"cash"}`)
	rec = do(e, http.MethodGet, "/v1/admin/cars/reserved", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Civic")

	rec = do(e, http.MethodGet, "/v1/admin/rentals", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")

	rec = do(e, http.MethodPut, "/v1/admin/balance", admin, `{"amount":2500}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":2500`)

	rec = do(e, http.MethodPut, "/v1/admin/balance", admin, `{"amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, "/v1/admin/cars/Corolla", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodDelete, "/v1/admin/cars/Corolla", admin, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
