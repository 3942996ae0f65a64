package books

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Suggestion is one entry in the curated reading catalog.
type Suggestion struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Reason string `json:"reason"`
	Length string `json:"length"`
}

type starterQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

var starterQuotes = []starterQuote{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Success is not final, failure is not fatal: It is the courage to continue that counts.", "Winston Churchill"},
	{"Your time is limited, don't waste it living someone else's life.", "Steve Jobs"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
}

var suggestionCatalog = map[string][]Suggestion{
	"self-help": {
		{"Atomic Habits", "James Clear", "self-help", "Great for building good habits and breaking bad ones", "medium"},
		{"The 7 Habits of Highly Effective People", "Stephen R. Covey", "self-help", "Timeless principles for personal and professional effectiveness", "long"},
	},
	"business": {
		{"Good to Great", "Jim Collins", "business", "Explains how companies transition from good to great", "long"},
		{"Lean Startup", "Eric Ries", "business", "Great for entrepreneurs starting new ventures", "medium"},
	},
	"biography": {
		{"Steve Jobs", "Walter Isaacson", "biography", "Inspirational story of Apple's co-founder", "long"},
		{"Becoming", "Michelle Obama", "biography", "Insightful memoir of the former First Lady", "medium"},
	},
	"fiction": {
		{"The Alchemist", "Paulo Coelho", "fiction", "Motivational story about pursuing your dreams", "short"},
		{"Man's Search for Meaning", "Viktor E. Frankl", "fiction", "Powerful story about finding purpose in life", "short"},
	},
}

// RandomQuote returns one quote from the starter catalog.
func RandomQuote(c *gin.Context) {
	q := starterQuotes[rand.Intn(len(starterQuotes))]
	c.JSON(http.StatusOK, q)
}

// SuggestBooks filters the curated catalog by genre, mood and length,
// falling back to self-help picks when nothing matches.
func SuggestBooks(c *gin.Context) {
	var input struct {
		Genre  string `json:"genre"`
		Mood   string `json:"mood"`
		Length string `json:"length"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	suggestions := suggestionCatalog[input.Genre]

	switch input.Mood {
	case "stressed":
		suggestions = filterByGenres(suggestions, "self-help", "fiction")
	case "unfocused":
		suggestions = filterByGenres(suggestions, "self-help", "business")
	}

	if input.Length != "" {
		var matched []Suggestion
		for _, s := range suggestions {
			if s.Length == input.Length {
				matched = append(matched, s)
			}
		}
		suggestions = matched
	}

	if len(suggestions) == 0 {
		suggestions = suggestionCatalog["self-help"][:2]
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}

	c.JSON(http.StatusOK, suggestions)
}

func filterByGenres(in []Suggestion, genres ...string) []Suggestion {
	var out []Suggestion
	for _, s := range in {
		for _, g := range genres {
			if s.Genre == g {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
