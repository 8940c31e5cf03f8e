package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RemowRamms/Flower-catalog/config"
	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/RemowRamms/Flower-catalog/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAPIKey = "test-api-key"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	))

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", APIKey: testAPIKey},
	}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootIndex(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Flower Catalog API", body["message"])
	require.Equal(t, "/api-docs", body["documentation"])
	require.Equal(t, "/api/v2", body["api"])
}

func TestLegacyRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.User{
		Name: "John Doe", Email: "john.doe@example.com",
		PasswordHash: "x", Role: models.RoleAdmin,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 1, body.Count)
	require.Len(t, body.Data, 1)
}

func TestCategoryCRUDRequiresAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	// No credentials
	w := doJSON(t, r, http.MethodPost, "/api/v2/categories/",
		gin.H{"name": "Bouquets"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// API key
	w = doJSON(t, r, http.MethodPost, "/api/v2/categories/",
		gin.H{"name": "Bouquets"}, map[string]string{"X-API-KEY": testAPIKey})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v2/categories/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	require.Equal(t, "Bouquets", categories[0].Name)
}

func TestProductLifecycle(t *testing.T) {
	r, db := newTestRouter(t)

	category := models.Category{Name: "Roses"}
	require.NoError(t, db.Create(&category).Error)

	price := 15.0
	stock := 25
	w := doJSON(t, r, http.MethodPost, "/api/v2/products/", gin.H{
		"name":        "Single Red Rose",
		"description": "One fresh rose",
		"price":       price,
		"stock":       stock,
		"category_id": category.ID,
	}, map[string]string{"X-API-KEY": testAPIKey})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, category.ID, created.CategoryID)

	w = doJSON(t, r, http.MethodGet, "/api/v2/products/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown category is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v2/products/", gin.H{
		"name":        "Ghost Flower",
		"price":       1.0,
		"stock":       1,
		"category_id": 999,
	}, map[string]string{"X-API-KEY": testAPIKey})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderCreatesPayment(t *testing.T) {
	r, db := newTestRouter(t)

	category := models.Category{Name: "Bouquets"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Red Roses Bouquet", Price: 150, Stock: 10, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)
	user := models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v2/orders/", gin.H{
		"user_id":        user.ID,
		"status":         "completed",
		"payment_method": "paypal",
		"items": []gin.H{
			{"product_id": product.ID, "quantity": 2},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.InDelta(t, 300.0, order.TotalAmount, 0.005)

	var payment models.Payment
	require.NoError(t, db.First(&payment, "order_id = ?", order.ID).Error)
	require.Equal(t, models.PaymentStatusPaid, payment.Status)
	require.InDelta(t, order.TotalAmount, payment.Amount, 0.005)

	// Stock was deducted
	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	require.Equal(t, 8, fresh.Stock)
}

func TestPlaceCancelledOrderSkipsPayment(t *testing.T) {
	r, db := newTestRouter(t)

	category := models.Category{Name: "Bouquets"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Sunflower Bouquet", Price: 120, Stock: 5, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)
	user := models.User{Name: "Nilu", Email: "nilu@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v2/orders/", gin.H{
		"user_id": user.ID,
		"status":  "cancelled",
		"items":   []gin.H{{"product_id": product.ID, "quantity": 1}},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var payments int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&payments).Error)
	require.Zero(t, payments)
}

func TestLogin(t *testing.T) {
	r, db := newTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("securepassword"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name: "Alice", Email: "alice@example.com",
		PasswordHash: string(hash), Role: models.RoleCustomer,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/auth/login",
		gin.H{"email": "alice@example.com", "password": "securepassword"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	w = doJSON(t, r, http.MethodPost, "/auth/login",
		gin.H{"email": "alice@example.com", "password": "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
