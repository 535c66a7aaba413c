package project

import "time"

// Project belongs to exactly one client.
type Project struct {
	ID        string
	ClientID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	ClientName string
}
