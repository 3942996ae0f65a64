package finance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterFinanceRoutes(r *gin.RouterGroup) {
	r.GET("/income", GetIncome)
	r.POST("/income", AddIncome)
	r.GET("/expenses", GetExpenses)
	r.POST("/expenses", AddExpense)
	r.GET("/remaining-income", GetRemainingIncome)
}

func sumAmount(model interface{}, userID string) (float64, error) {
	var total float64
	err := utils.DB.Model(model).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func GetIncome(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	income, err := sumAmount(&models.Income{}, user.ID)
	if err != nil {
		utils.GetLogger().Error("failed to sum income", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch income"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

func AddIncome(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid amount is required"})
		return
	}
	if input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	income := models.Income{UserID: user.ID, Amount: input.Amount, Date: input.Date}
	if err := utils.DB.Create(&income).Error; err != nil {
		utils.GetLogger().Error("failed to add income", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add income"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Income added successfully"})
}

func GetExpenses(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var expenses []models.Expense
	if err := utils.DB.Where("user_id = ?", user.ID).Order("date DESC").Find(&expenses).Error; err != nil {
		utils.GetLogger().Error("failed to fetch expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func AddExpense(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
		Date     string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid amount is required"})
		return
	}
	if input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}
	if input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
	}
	if err := utils.DB.Create(&expense).Error; err != nil {
		utils.GetLogger().Error("failed to add expense", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Expense added successfully"})
}

func GetRemainingIncome(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	income, err := sumAmount(&models.Income{}, user.ID)
	if err != nil {
		utils.GetLogger().Error("failed to sum income", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate income"})
		return
	}
	expenses, err := sumAmount(&models.Expense{}, user.ID)
	if err != nil {
		utils.GetLogger().Error("failed to sum expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"remainingIncome": income - expenses})
}
