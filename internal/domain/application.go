package domain

import "time"

// Application links a user to a job they applied for.
type Application struct {
	ID        int64
	JobID     int64
	Username  string
	CreatedAt time.Time
}
