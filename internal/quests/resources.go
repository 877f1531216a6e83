package quests

import "github.com/example/questlog/pkg/models"

var resources = []models.LearningResource{
	{
		ID:          models.CategoryJavaScript,
		Title:       "JavaScript",
		Description: "Learn the programming language of the web",
		Links: []models.ResourceLink{
			{Name: "MDN Web Docs", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
			{Name: "JavaScript.info", URL: "https://javascript.info/"},
			{Name: "W3Schools JS", URL: "https://www.w3schools.com/js/"},
			{Name: "FreeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/"},
		},
	},
	{
		ID:          models.CategoryPHP,
		Title:       "PHP",
		Description: "Server-side scripting language",
		Links: []models.ResourceLink{
			{Name: "PHP Manual", URL: "https://www.php.net/manual/en/"},
			{Name: "W3Schools PHP", URL: "https://www.w3schools.com/php/"},
			{Name: "PHP The Right Way", URL: "https://phptherightway.com/"},
			{Name: "Laracasts", URL: "https://laracasts.com/"},
		},
	},
	{
		ID:          models.CategoryCSS,
		Title:       "CSS",
		Description: "Make web pages look great",
		Links: []models.ResourceLink{
			{Name: "MDN CSS Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/CSS"},
			{Name: "CSS-Tricks", URL: "https://css-tricks.com/"},
			{Name: "W3Schools CSS", URL: "https://www.w3schools.com/css/"},
			{Name: "Flexbox Froggy", URL: "https://flexboxfroggy.com/"},
		},
	},
}

// Resources returns the learning resource catalog, one entry per
// programming category
func Resources() []models.LearningResource {
	out := make([]models.LearningResource, len(resources))
	for i, r := range resources {
		r.Links = append([]models.ResourceLink(nil), r.Links...)
		out[i] = r
	}
	return out
}
