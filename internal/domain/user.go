package domain

import "time"

// User represents a customer. Users are created lazily on first booking
// and upserted by phone; they are never deleted.
type User struct {
	ID        int64
	Name      string
	Phone     string // unique
	Email     string // unique
	CreatedAt time.Time
}

// Vehicle represents a customer's vehicle, upserted by (user, make, model).
// Two vehicles of the same make and model for one user collapse to a single
// record; the optional registration number exists as the future uniqueness
// key for distinguishing them.
type Vehicle struct {
	ID           int64
	UserID       int64
	Make         string
	Model        string
	Year         int
	Registration *string
	CreatedAt    time.Time
}

// Label returns the display form "Make Model"
func (v *Vehicle) Label() string {
	return v.Make + " " + v.Model
}
