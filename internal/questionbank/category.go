package questionbank

// DefaultCategoryID is the fallback category when a category has no questions.
const DefaultCategoryID = "general"

// The daily challenge draws from every category at once.
const (
	DailyCategoryID   = "daily_challenge"
	DailyCategoryName = "Daily Challenge"
	DailyCount        = 5
)

// Category groups questions by topic.
type Category struct {
	ID          string
	Name        string
	Description string
	// Difficulty is the suggested level shown in the picker.
	Difficulty Difficulty
}

// DefaultCategories returns the fixed category catalogue in display order.
func DefaultCategories() []Category {
	return []Category{
		{ID: "general", Name: "General Knowledge", Description: "A mix of questions from every field", Difficulty: Medium},
		{ID: "science", Name: "Science", Description: "Physics, chemistry, biology and space", Difficulty: Medium},
		{ID: "history", Name: "History", Description: "World history and famous events", Difficulty: Medium},
		{ID: "geography", Name: "Geography", Description: "Countries, capitals and landmarks", Difficulty: Medium},
		{ID: "sports", Name: "Sports", Description: "Games, athletes and competitions", Difficulty: Easy},
		{ID: "art", Name: "Art", Description: "Painters, music and architecture", Difficulty: Medium},
		{ID: "literature", Name: "Literature", Description: "Authors, novels and poetry", Difficulty: Hard},
		{ID: "technology", Name: "Technology", Description: "Computers, software and inventions", Difficulty: Medium},
		{ID: "religion", Name: "Religion", Description: "World religions and their traditions", Difficulty: Medium},
		{ID: "puzzles", Name: "Puzzles", Description: "Riddles and logic teasers", Difficulty: Hard},
	}
}
