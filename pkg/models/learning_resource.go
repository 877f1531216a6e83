package models

// ResourceLink is a single external learning link
type ResourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LearningResource groups reference links for one programming category
type LearningResource struct {
	ID          Category       `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Links       []ResourceLink `json:"links"`
}
