package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterHealthRoutes(r *gin.RouterGroup) {
	r.POST("/health", SaveRecord)
	r.PUT("/health/:id", UpdateRecord)
	r.GET("/health", GetRecords)
	r.DELETE("/health/:id", DeleteRecord)
}

type recordInput struct {
	ID          uint   `json:"id"`
	HealthTips  string `json:"healthTips"`
	Steps       int    `json:"steps"`
	Workout     string `json:"workout"`
	WaterIntake int    `json:"waterIntake"`
}

func (in recordInput) incomplete() bool {
	return in.HealthTips == "" || in.Steps == 0 || in.Workout == "" || in.WaterIntake == 0
}

// SaveRecord inserts a new record, or updates an existing one when the body
// carries an id.
func SaveRecord(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if input.ID != 0 {
		result := utils.DB.Model(&models.HealthRecord{}).
			Where("id = ? AND user_id = ?", input.ID, user.ID).
			Updates(map[string]interface{}{
				"health_tips":  input.HealthTips,
				"steps":        input.Steps,
				"workout":      input.Workout,
				"water_intake": input.WaterIntake,
			})
		if result.Error != nil {
			utils.GetLogger().Error("failed to update health record", zap.Error(result.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Record updated successfully"})
		return
	}

	record := models.HealthRecord{
		UserID:      user.ID,
		HealthTips:  input.HealthTips,
		Steps:       input.Steps,
		Workout:     input.Workout,
		WaterIntake: input.WaterIntake,
	}
	if err := utils.DB.Create(&record).Error; err != nil {
		utils.GetLogger().Error("failed to create health record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Record added successfully", "id": record.ID})
}

func UpdateRecord(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	result := utils.DB.Model(&models.HealthRecord{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"health_tips":  input.HealthTips,
			"steps":        input.Steps,
			"workout":      input.Workout,
			"water_intake": input.WaterIntake,
		})
	if result.Error != nil {
		utils.GetLogger().Error("failed to update health record", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found or unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record updated successfully"})
}

func GetRecords(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var records []models.HealthRecord
	if err := utils.DB.Where("user_id = ?", user.ID).Find(&records).Error; err != nil {
		utils.GetLogger().Error("failed to fetch health records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func DeleteRecord(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.HealthRecord{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete health record", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting record"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found or unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
