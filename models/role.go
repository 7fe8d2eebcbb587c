package models

// Role names recognized by the service.
const (
	RoleAdmin  = "admin"
	RoleNormal = "normal"
)

// Role is a named account role. Roles are created by migrations and are
// read-only for the application.
type Role struct {
	RoleID int64  `json:"id"`
	Name   string `json:"name"`
}
