package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterEventsRoutes(r *gin.RouterGroup) {
	r.GET("/events", GetEvents)
	r.POST("/events", CreateEvent)
	r.PUT("/events/:id", UpdateEvent)
	r.DELETE("/events/:id", DeleteEvent)
}

type eventInput struct {
	EventName   string `json:"eventName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	VenueOrLink string `json:"venueOrLink"`
	Details     string `json:"details"`
}

func (in eventInput) incomplete() bool {
	return in.EventName == "" || in.Date == "" || in.Time == "" || in.VenueOrLink == ""
}

func GetEvents(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var events []models.Event
	if err := utils.DB.Where("user_id = ?", user.ID).Order("date, time").Find(&events).Error; err != nil {
		utils.GetLogger().Error("failed to fetch events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name, date, time, and venue/link are required"})
		return
	}

	event := models.Event{
		UserID:      user.ID,
		EventName:   input.EventName,
		Date:        input.Date,
		Time:        input.Time,
		VenueOrLink: input.VenueOrLink,
		Details:     input.Details,
	}
	if err := utils.DB.Create(&event).Error; err != nil {
		utils.GetLogger().Error("failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "id": event.ID})
}

func UpdateEvent(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name, date, time, and venue/link are required"})
		return
	}

	result := utils.DB.Model(&models.Event{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"event_name":    input.EventName,
			"date":          input.Date,
			"time":          input.Time,
			"venue_or_link": input.VenueOrLink,
			"details":       input.Details,
		})
	if result.Error != nil {
		utils.GetLogger().Error("failed to update event", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

func DeleteEvent(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Event{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete event", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
