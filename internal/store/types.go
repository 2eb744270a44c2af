package store

import "errors"

type DatabaseType string

const (
	DBTypePostgres DatabaseType = "postgres"
	DBTypeSQLite   DatabaseType = "sqlite"
)

// ErrDuplicateEmail is returned by CreateSubscription when the unique
// constraint on newsletter_subscriptions.email fires. The constraint is
// the sole arbiter between concurrent subscribes for the same email.
var ErrDuplicateEmail = errors.New("email already subscribed")

// OverviewStats are the live counters behind GET /api/stats.
type OverviewStats struct {
	TotalApplications    int64 `db:"total_applications"`
	PendingApplications  int64 `db:"pending_applications"`
	ApprovedApplications int64 `db:"approved_applications"`
	TotalContacts        int64 `db:"total_contacts"`
	ActiveSubscribers    int64 `db:"active_subscribers"`
	TotalEvents          int64 `db:"total_events"`
}
