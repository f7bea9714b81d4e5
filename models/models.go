package models

// Item types.
const (
	TypeLost  = "Lost"
	TypeFound = "Found"
)

// Item statuses. Items are created Pending; Resolved exists for a future
// resolve flow but nothing sets it yet.
const (
	StatusPending  = "Pending"
	StatusResolved = "Resolved"
)

// Roles. Role is carried in the session and shown on the dashboard only;
// no route restricts access by role.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type Item struct {
	ID          int
	Type        string // "Lost" or "Found"
	Title       string
	Location    string
	Status      string
	Description string
	Image       string // stored file name, empty when no image was attached
}

type User struct {
	Username string
	Role     string // "student" or "admin"
}
