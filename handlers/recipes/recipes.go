package recipes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterRecipesRoutes(r *gin.RouterGroup) {
	r.GET("/recipes", GetRecipes)
	r.POST("/recipes", CreateRecipe)
	r.PUT("/recipes/:id", UpdateRecipe)
	r.DELETE("/recipes/:id", DeleteRecipe)
}

type recipeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PrepTime    int    `json:"prep_time"`
	CookTime    int    `json:"cook_time"`
	Servings    int    `json:"servings"`
}

func GetRecipes(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var recipes []models.Recipe
	if err := utils.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&recipes).Error; err != nil {
		utils.GetLogger().Error("failed to fetch recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func CreateRecipe(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input recipeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	recipe := models.Recipe{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		PrepTime:    input.PrepTime,
		CookTime:    input.CookTime,
		Servings:    input.Servings,
	}
	if err := utils.DB.Create(&recipe).Error; err != nil {
		utils.GetLogger().Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe created successfully", "id": recipe.ID})
}

func UpdateRecipe(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input recipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result := utils.DB.Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"title":       input.Title,
			"description": input.Description,
			"prep_time":   input.PrepTime,
			"cook_time":   input.CookTime,
			"servings":    input.Servings,
		})
	if result.Error != nil {
		utils.GetLogger().Error("failed to update recipe", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated successfully"})
}

func DeleteRecipe(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Recipe{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete recipe", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
