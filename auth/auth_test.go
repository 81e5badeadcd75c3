package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.VendorApplication{}, &models.Vendor{},
	))
	return db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	handler := RegisterHandler(db, "test-secret")

	payload := gin.H{
		"email":      "aminata@example.com",
		"password":   "secret1",
		"first_name": "Aminata",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, handler, payload).Code)

	// The second insert hits the unique index, not a 500.
	assert.Equal(t, http.StatusConflict, postJSON(t, handler, payload).Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterCompletesDeferredApproval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	// Application approved before the applicant had an account.
	app := models.VendorApplication{
		StoreName: "Aberdeen Seafood",
		Email:     "seller@example.com",
		Status:    models.ApplicationApproved,
	}
	require.NoError(t, db.Create(&app).Error)

	w := postJSON(t, RegisterHandler(db, "test-secret"), gin.H{
		"email":      "seller@example.com",
		"password":   "secret1",
		"first_name": "Sia",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "seller@example.com").Error)
	assert.Equal(t, models.RoleVendor, user.Role)

	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "user_id = ?", user.ID).Error)
	assert.True(t, vendor.IsApproved)

	var linked models.VendorApplication
	require.NoError(t, db.First(&linked, "id = ?", app.ID).Error)
	require.NotNil(t, linked.UserID)
	assert.Equal(t, user.ID, *linked.UserID)
}
