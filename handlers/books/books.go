package books

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func RegisterBooksRoutes(r *gin.RouterGroup) {
	r.GET("/books", GetBooks)
	r.POST("/books", CreateBook)
	r.DELETE("/books/:id", DeleteBook)
	r.POST("/books/suggest", SuggestBooks)
	r.GET("/quotes", GetQuotes)
	r.POST("/quotes", CreateQuote)
	r.DELETE("/quotes/:id", DeleteQuote)
	r.GET("/quotes/random", RandomQuote)
}

func GetBooks(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var books []models.Book
	if err := utils.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&books).Error; err != nil {
		utils.GetLogger().Error("failed to fetch books", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}

	c.JSON(http.StatusOK, books)
}

func CreateBook(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Title       string `json:"title"`
		Author      string `json:"author"`
		Genre       string `json:"genre"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" || input.Author == "" || input.Genre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, author, and genre are required"})
		return
	}

	book := models.Book{
		UserID:      user.ID,
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		Description: input.Description,
	}
	if err := utils.DB.Create(&book).Error; err != nil {
		utils.GetLogger().Error("failed to create book", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book saved successfully", "id": book.ID})
}

func DeleteBook(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Book{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete book", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func GetQuotes(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var quotes []models.Quote
	if err := utils.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&quotes).Error; err != nil {
		utils.GetLogger().Error("failed to fetch quotes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func CreateQuote(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Text     string `json:"text"`
		Author   string `json:"author"`
		Category string `json:"category"`
		Source   string `json:"source"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and category are required"})
		return
	}

	quote := models.Quote{
		UserID:   user.ID,
		Text:     input.Text,
		Author:   input.Author,
		Category: input.Category,
		Source:   input.Source,
	}
	if err := utils.DB.Create(&quote).Error; err != nil {
		utils.GetLogger().Error("failed to create quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Quote saved successfully", "id": quote.ID})
}

func DeleteQuote(c *gin.Context) {
	user, exists := auth.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result := utils.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Quote{})
	if result.Error != nil {
		utils.GetLogger().Error("failed to delete quote", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found or not owned by user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}
