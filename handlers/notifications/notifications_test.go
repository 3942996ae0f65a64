package notifications

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/services/notification"
)

const testUserID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

// setupRouter wires the notification routes behind a stub middleware that
// injects the test user, standing in for the JWT middleware.
func setupRouter(t *testing.T) (*gin.Engine, *notification.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Notification{}))

	user := models.User{ID: testUserID, Name: "Test User", Email: "test@example.com", Password: "secret"}
	require.NoError(t, db.Create(&user).Error)

	svc := notification.NewService(db)

	r := gin.New()
	grp := r.Group("/")
	grp.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	RegisterNotificationsRoutes(grp, svc)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedNotification(t *testing.T, svc *notification.Service, in notification.Input) *models.Notification {
	t.Helper()
	n, err := svc.Create(testUserID, in)
	require.NoError(t, err)
	return n
}

func baseInput() notification.Input {
	return notification.Input{
		Module:  models.ModuleFinance,
		Type:    "bill_due",
		Title:   "Pay electricity bill",
		Message: "The electricity bill is due soon",
	}
}

func TestCreateNotificationEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/notifications", gin.H{
		"module":  "finance",
		"type":    "bill_due",
		"title":   "Pay rent",
		"message": "Rent is due on the first",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, models.MethodInApp, created.NotificationMethod)
}

func TestCreateNotificationEndpointRejectsMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/notifications", gin.H{
		"module": "finance",
		"type":   "bill_due",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNotificationEndpointRejectsBadDate(t *testing.T) {
	r, _ := setupRouter(t)

	body := gin.H{
		"module":   "finance",
		"type":     "bill_due",
		"title":    "Pay rent",
		"message":  "Rent is due",
		"due_date": "01/06/2024",
	}
	w := doJSON(t, r, http.MethodPost, "/notifications", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpcomingEndpointRespectsLimit(t *testing.T) {
	r, svc := setupRouter(t)

	for i := 0; i < 7; i++ {
		seedNotification(t, svc, baseInput())
	}

	w := doJSON(t, r, http.MethodGet, "/notifications/upcoming?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notifications, 2)
}

func TestUpcomingEndpointRejectsBadLimit(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/notifications/upcoming?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/notifications/upcoming?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestByModuleEndpoint(t *testing.T) {
	r, svc := setupRouter(t)

	seedNotification(t, svc, baseInput())
	healthIn := baseInput()
	healthIn.Module = models.ModuleHealth
	seedNotification(t, svc, healthIn)

	w := doJSON(t, r, http.MethodGet, "/notifications/module/finance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, models.ModuleFinance, resp.Notifications[0].Module)

	w = doJSON(t, r, http.MethodGet, "/notifications/module/chores", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSnoozeEndpoint(t *testing.T) {
	r, svc := setupRouter(t)

	in := baseInput()
	due := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
	dueTime := "10:00"
	in.DueDate = &due
	in.DueTime = &dueTime
	created := seedNotification(t, svc, in)

	w := doJSON(t, r, http.MethodPut, "/notifications/1/snooze", gin.H{"days": 1, "hours": 2})
	require.Equal(t, http.StatusOK, w.Code)

	snoozed, err := svc.Get(testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-02", snoozed.DueDate.Format("2006-01-02"))
	assert.Equal(t, "12:00:00", *snoozed.DueTime)
}

func TestSnoozeEndpointNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/notifications/999/snooze", gin.H{"days": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSnoozeEndpointOnCompleted(t *testing.T) {
	r, svc := setupRouter(t)

	created := seedNotification(t, svc, baseInput())
	_, err := svc.Complete(testUserID, created.ID, true)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/notifications/1/snooze", gin.H{"days": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteEndpoint(t *testing.T) {
	r, svc := setupRouter(t)

	created := seedNotification(t, svc, baseInput())

	w := doJSON(t, r, http.MethodPatch, "/notifications/1/complete", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	n, err := svc.Get(testUserID, created.ID)
	require.NoError(t, err)
	assert.True(t, n.IsCompleted)

	rows, err := svc.Upcoming(testUserID, notification.DefaultUpcomingLimit)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetAndUpdateEndpoints(t *testing.T) {
	r, svc := setupRouter(t)

	seedNotification(t, svc, baseInput())

	w := doJSON(t, r, http.MethodGet, "/notifications/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/notifications/1", gin.H{
		"module":   "health",
		"type":     "checkup",
		"title":    "Annual checkup",
		"message":  "Book the annual checkup",
		"priority": "high",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := svc.Get(testUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ModuleHealth, updated.Module)
	assert.Equal(t, models.PriorityHigh, updated.Priority)

	w = doJSON(t, r, http.MethodGet, "/notifications/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
