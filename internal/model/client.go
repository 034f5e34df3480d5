package model

import "time"

// Client is a customer entity owning zero or more projects. Clients are
// read-only in the back office; they are created and edited upstream.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Status    string    `json:"status"` // free-form label, e.g. "Active"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
