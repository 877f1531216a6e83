package quests

import "github.com/example/questlog/pkg/models"

type template struct {
	title       string
	description string
	points      int
	difficulty  models.Difficulty
	category    models.Category
}

var programmingPool = []template{
	{"Console Log Pro", "Write 3 different console.log statements in JavaScript", 15, models.DifficultyEasy, models.CategoryJavaScript},
	{"CSS Color Explorer", "Style a div with a custom background color and border", 15, models.DifficultyEasy, models.CategoryCSS},
	{"PHP Hello World", "Write a PHP script that prints 'Hello World'", 10, models.DifficultyEasy, models.CategoryPHP},
	{"Variable Practice", "Declare 5 variables of different types in JavaScript", 20, models.DifficultyEasy, models.CategoryJavaScript},
	{"Flexbox Playground", "Build a simple flexbox layout with 3 items", 20, models.DifficultyEasy, models.CategoryCSS},
	{"Array Methods", "Practice map, filter or reduce on an array", 25, models.DifficultyMedium, models.CategoryJavaScript},
	{"PHP Array Loop", "Create an array and walk it with foreach", 15, models.DifficultyEasy, models.CategoryPHP},
	{"CSS Animation", "Create a simple CSS animation or transition effect", 25, models.DifficultyMedium, models.CategoryCSS},
}

var generalPool = []template{
	{"Hydration Hero", "Drink 2 glasses of water right now", 10, models.DifficultyEasy, models.CategoryGeneral},
	{"Stretch Break", "Do 5 minutes of stretching", 15, models.DifficultyEasy, models.CategoryGeneral},
	{"Mindful Moment", "Take 5 minutes to breathe deeply and relax", 10, models.DifficultyEasy, models.CategoryGeneral},
	{"Tidy Desk Challenge", "Clean and organize your workspace for 10 minutes", 15, models.DifficultyEasy, models.CategoryGeneral},
	{"Reading Time", "Read an article or a book chapter for 15 minutes", 20, models.DifficultyEasy, models.CategoryGeneral},
	{"Short Walk", "Walk outside or around the house for 10 minutes", 20, models.DifficultyEasy, models.CategoryGeneral},
	{"Gratitude Journal", "Write down 3 things you are grateful for today", 15, models.DifficultyEasy, models.CategoryGeneral},
	{"Learn Something New", "Watch a short educational video on any topic", 15, models.DifficultyEasy, models.CategoryGeneral},
	{"Reach Out", "Send a message to a friend or family member", 10, models.DifficultyEasy, models.CategoryGeneral},
	{"Eye Break", "Look away from the screen for 5 minutes (20-20-20 rule)", 10, models.DifficultyEasy, models.CategoryGeneral},
	{"Plan Tomorrow", "Write 3 goals or tasks for tomorrow", 15, models.DifficultyEasy, models.CategoryGeneral},
	{"Healthy Snack", "Eat a piece of fruit or another healthy snack", 10, models.DifficultyEasy, models.CategoryGeneral},
}
