package grocery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterGroceryRoutes(r *gin.RouterGroup) {
	r.GET("/grocery", GetItems)
	r.POST("/grocery", AddItem)
	r.PUT("/grocery/:id", UpdateItem)
	r.PATCH("/grocery/:id/toggle", TogglePurchased)
	r.DELETE("/grocery/:id", DeleteItem)
}

type itemInput struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	Brand     string `json:"brand"`
	RecipeID  *uint  `json:"recipe_id"`
	Purchased bool   `json:"purchased"`
}

func GetItems(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var items []models.GroceryItem
	if err := utils.DB.Where("user_id = ?", user.ID).Order("added_at DESC").Find(&items).Error; err != nil {
		utils.GetLogger().Error("failed to fetch grocery items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func AddItem(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input itemInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	item := models.GroceryItem{
		UserID:    user.ID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Brand:     input.Brand,
		RecipeID:  input.RecipeID,
		Purchased: input.Purchased,
	}
	if err := utils.DB.Create(&item).Error; err != nil {
		utils.GetLogger().Error("failed to add grocery item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add grocery item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Grocery item added successfully", "id": item.ID})
}

func UpdateItem(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input itemInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	result := utils.DB.Model(&models.GroceryItem{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"name":      input.Name,
			"quantity":  input.Quantity,
			"unit":      input.Unit,
			"brand":     input.Brand,
			"recipe_id": input.RecipeID,
			"purchased": input.Purchased,
		})
	if result.Error != nil {
		utils.GetLogger().Error("failed to update grocery item", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully"})
}

func TogglePurchased(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Purchased bool `json:"purchased"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result := utils.DB.Model(&models.GroceryItem{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Update("purchased", input.Purchased)
	if result.Error != nil {
		utils.GetLogger().Error("failed to toggle grocery item", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item status updated successfully"})
}

func DeleteItem(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.GroceryItem{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete grocery item", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
