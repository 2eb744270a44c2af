package models

// Event is a club event shown on the website, read-only over the API.
type Event struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Date        int64  `db:"date" json:"date"`
	Location    string `db:"location" json:"location"`
	CreatedAt   int64  `db:"created_at" json:"created_at"`
}
