package employee

import "time"

// Employee is the admin-managed directory record. It is independent of the
// users table; directory entries exist for people who never log in.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	Role       string
	Created    time.Time
}
