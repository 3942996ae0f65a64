package models

import "time"

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	PrepTime    int       `json:"prep_time"`
	CookTime    int       `json:"cook_time"`
	Servings    int       `json:"servings"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// GroceryItem is one entry on the user's shopping list, optionally tied to
// a recipe it was added for.
type GroceryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Quantity  string    `gorm:"size:50" json:"quantity,omitempty"`
	Unit      string    `gorm:"size:50" json:"unit,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	RecipeID  *uint     `json:"recipe_id,omitempty"`
	Purchased bool      `gorm:"not null;default:false" json:"purchased"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GroceryItem) TableName() string {
	return "user_ingredients"
}
