package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Vendor{}, &models.Category{}, &models.Product{},
	))
	return db
}

func seedVendorWithProduct(t *testing.T, db *gorm.DB, userID string) models.Product {
	t.Helper()
	vendor := models.Vendor{UserID: userID, StoreName: "Kroo Bay Traders", IsApproved: true}
	require.NoError(t, db.Create(&vendor).Error)
	product := models.Product{
		VendorID:   vendor.ID,
		CategoryID: 1,
		Name:       "Palm Oil 5L",
		Price:      decimal.RequireFromString("10.00"),
		Stock:      3,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func testContext(method, target string, params gin.Params) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Params = params
	return w, c
}

func TestDeleteProductIsSoft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	product := seedVendorWithProduct(t, db, "u1")

	w, c := testContext(http.MethodDelete, "/api/products/1", gin.Params{{Key: "id", Value: "1"}})
	c.Set("user_id", "u1")
	DeleteProduct(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	// The row survives with is_active=false.
	var kept models.Product
	require.NoError(t, db.First(&kept, "id = ?", product.ID).Error)
	assert.False(t, kept.IsActive)
	assert.Equal(t, "Palm Oil 5L", kept.Name)

	// The default listing no longer shows it.
	w, c = testContext(http.MethodGet, "/api/products", nil)
	GetProducts(db)(c)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	// A direct fetch still resolves it, so order history links keep working.
	w, c = testContext(http.MethodGet, "/api/products/1", gin.Params{{Key: "id", Value: "1"}})
	GetProductByID(db)(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteProductOwnerOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	product := seedVendorWithProduct(t, db, "u1")

	intruder := models.Vendor{UserID: "u2", StoreName: "Other Shop", IsApproved: true}
	require.NoError(t, db.Create(&intruder).Error)

	w, c := testContext(http.MethodDelete, "/api/products/1", gin.Params{{Key: "id", Value: "1"}})
	c.Set("user_id", "u2")
	DeleteProduct(db)(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var kept models.Product
	require.NoError(t, db.First(&kept, "id = ?", product.ID).Error)
	assert.True(t, kept.IsActive)
}

func TestGetProductsListsActiveOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	seedVendorWithProduct(t, db, "u1")
	retired := models.Product{
		VendorID: 1, CategoryID: 1, Name: "Retired",
		Price: decimal.RequireFromString("1.00"), IsActive: false,
	}
	require.NoError(t, db.Create(&retired).Error)

	w, c := testContext(http.MethodGet, "/api/products", nil)
	GetProducts(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Palm Oil 5L", listed[0].Name)
}
