package moods

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterMoodsRoutes(r *gin.RouterGroup) {
	r.POST("/moods", SaveMood)
	r.GET("/moods", GetMoods)
}

func SaveMood(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Mood        string `json:"mood"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Mood == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	mood := models.Mood{
		UserID:      user.ID,
		Mood:        input.Mood,
		Description: input.Description,
	}
	if err := utils.DB.Create(&mood).Error; err != nil {
		utils.GetLogger().Error("failed to save mood", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mood"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mood saved successfully", "id": mood.ID})
}

func GetMoods(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var moods []models.Mood
	if err := utils.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&moods).Error; err != nil {
		utils.GetLogger().Error("failed to fetch moods", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch moods"})
		return
	}

	c.JSON(http.StatusOK, moods)
}
