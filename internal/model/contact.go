package model

import "time"

// ContactMessage is a lead captured by the marketing site's contact form,
// surfaced in the back-office inbox.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "unread" | "read"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages.
type ContactListOptions struct {
	// Status filters by message status: "", "all", "unread", "read".
	// Empty string and "all" return all messages.
	Status string
	Limit  int
	Offset int
}
