package models

import "time"

// Difficulty is the effort level of a quest
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Category is the subject a quest belongs to
type Category string

const (
	CategoryJavaScript Category = "javascript"
	CategoryPHP        Category = "php"
	CategoryCSS        Category = "css"
	CategoryGeneral    Category = "general"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryJavaScript, CategoryPHP, CategoryCSS, CategoryGeneral:
		return true
	}
	return false
}

// Quest is a single assignable task with a point reward
type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    Category   `json:"category"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DailyQuestsResponse is the payload of the quest endpoints
type DailyQuestsResponse struct {
	Quests      []Quest   `json:"quests"`
	GeneratedAt time.Time `json:"generatedAt"`
}
