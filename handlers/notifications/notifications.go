package notifications

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/services/notification"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

// notificationRequest is the JSON body for create and update. Dates travel
// as YYYY-MM-DD and times as HH:MM or HH:MM:SS.
type notificationRequest struct {
	Module             string `json:"module"`
	Type               string `json:"type"`
	Title              string `json:"title"`
	Message            string `json:"message"`
	Priority           string `json:"priority"`
	DueDate            string `json:"due_date"`
	DueTime            string `json:"due_time"`
	IsRecurring        bool   `json:"is_recurring"`
	RecurrencePattern  string `json:"recurrence_pattern"`
	NotificationMethod string `json:"notification_method"`
}

func (r notificationRequest) toInput() (notification.Input, error) {
	in := notification.Input{
		Module:             r.Module,
		Type:               r.Type,
		Title:              r.Title,
		Message:            r.Message,
		Priority:           r.Priority,
		IsRecurring:        r.IsRecurring,
		RecurrencePattern:  r.RecurrencePattern,
		NotificationMethod: r.NotificationMethod,
	}
	if r.DueDate != "" {
		d, err := notification.ParseDate(r.DueDate)
		if err != nil {
			return in, notification.NewValidationError("%s", err)
		}
		in.DueDate = &d
	}
	if r.DueTime != "" {
		in.DueTime = &r.DueTime
	}
	return in, nil
}

// respondError maps the engine's error taxonomy onto HTTP statuses:
// ValidationError 400, NotFoundError 404, anything else 500.
func respondError(c *gin.Context, err error) {
	var verr notification.ValidationError
	var nferr notification.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
	default:
		utils.GetLogger().Error("notification store failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process notification request"})
	}
}

func currentUser(c *gin.Context) (models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
	}
	return user, ok
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return 0, false
	}
	return uint(id), true
}

// CreateNotification handles POST /notifications.
func CreateNotification(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req notificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			respondError(c, err)
			return
		}

		created, err := svc.Create(user.ID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListNotifications handles GET /notifications.
func ListNotifications(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		rows, err := svc.List(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": rows})
	}
}

// UpcomingNotifications handles GET /notifications/upcoming.
func UpcomingNotifications(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		limit := notification.DefaultUpcomingLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = parsed
		}

		rows, err := svc.Upcoming(user.ID, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": rows})
	}
}

// NotificationsByModule handles GET /notifications/module/:module with
// optional completed and priority query filters.
func NotificationsByModule(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var completed *bool
		if raw := c.Query("completed"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completed filter"})
				return
			}
			completed = &parsed
		}

		rows, err := svc.ListByModule(user.ID, c.Param("module"), completed, c.Query("priority"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": rows})
	}
}

// GetNotification handles GET /notifications/:id.
func GetNotification(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		n, err := svc.Get(user.ID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

// UpdateNotification handles PUT /notifications/:id.
func UpdateNotification(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req notificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			respondError(c, err)
			return
		}

		updated, err := svc.Update(user.ID, id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// SnoozeNotification handles PUT /notifications/:id/snooze. Each call
// re-applies the requested delay, so retrying a timed-out snooze without
// checking current state compounds it.
func SnoozeNotification(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req struct {
			Days  int `json:"days"`
			Hours int `json:"hours"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		snoozed, err := svc.Snooze(user.ID, id, req.Days, req.Hours)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snoozed)
	}
}

// CompleteNotification handles PATCH /notifications/:id/complete. The body
// may carry {"completed": false} to reopen; the default marks it done.
func CompleteNotification(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req struct {
			Completed *bool `json:"completed"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		completed := true
		if req.Completed != nil {
			completed = *req.Completed
		}

		n, err := svc.Complete(user.ID, id, completed)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}
