package models

// NewsletterSubscription holds at most one row per email. Unsubscribing
// flips is_active instead of deleting, so a later subscribe reactivates
// the same identity.
type NewsletterSubscription struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	SubscribedAt int64  `db:"subscribed_at" json:"subscribed_at"`
}
