// Package domain defines the persistence models for trivia categories and
// questions. These types are mapped with GORM and double as the wire
// representation returned by the API.
package domain

// Category is a topic label that questions can reference (e.g. "Science").
// Categories are read-only through the API; rows are seeded at bootstrap or
// managed out of band.
//
// Fields:
//   - ID: store-assigned integer primary key, stable and never reused.
//   - Type: non-empty display name of the category.
type Category struct {
	ID   int    `json:"id"   gorm:"primaryKey;autoIncrement"`
	Type string `json:"type" gorm:"type:varchar(64);not null"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// Question is a single trivia question with its answer, difficulty rating,
// and a soft reference to a category.
//
// Fields:
//   - ID: store-assigned integer primary key.
//   - Question / Answer: non-empty text (enforced at the handler layer).
//   - Category: references Category.ID but is deliberately not a foreign key;
//     a question may point at a category id that does not exist.
//   - Difficulty: integer rating supplied by the client.
//
// The JSON tags are the exact field set exposed to clients; there are no
// derived fields.
type Question struct {
	ID         int    `json:"id"         gorm:"primaryKey;autoIncrement"`
	Question   string `json:"question"   gorm:"type:text;not null"`
	Answer     string `json:"answer"     gorm:"type:text;not null"`
	Category   int    `json:"category"   gorm:"not null;index"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }
