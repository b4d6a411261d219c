package domain

import "time"

// Admin models a backoffice operator. Admin identifiers never contain '@',
// which keeps the user and admin subject namespaces disjoint.
type Admin struct {
	ID           string
	Name         string
	PasswordHash string
	Authorities  []string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
