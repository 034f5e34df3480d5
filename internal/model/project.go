package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectCategory is the closed set of work categories the studio offers.
// Unknown categories are rejected at the model boundary.
type ProjectCategory string

const (
	CategoryWebApp       ProjectCategory = "Web App"
	CategoryMobileApp    ProjectCategory = "Mobile App"
	CategoryUIUXDesign   ProjectCategory = "UI/UX Design"
	CategorySEOMarketing ProjectCategory = "SEO/Marketing"
	CategoryMaintenance  ProjectCategory = "Maintenance"
)

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryWebApp, CategoryMobileApp, CategoryUIUXDesign,
		CategorySEOMarketing, CategoryMaintenance:
		return true
	}
	return false
}

// Requirement is a free-text scope item carried inside its parent project.
// The ID is provisional: it is assigned locally when the requirement is added
// and becomes durable only once the parent project's next full update persists.
type Requirement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectFile is an encoded attachment: a base64 data URI plus the resolved
// filename and MIME type (see internal/attachment).
type ProjectFile struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
}

// Project is a unit of contracted work with a fixed total value, belonging to
// exactly one client.
//
// RemainingAmount is advisory only: the upstream API stores it, but every
// aggregate view recomputes remaining balances from TotalAmount, AdvancePaid
// and the payment records (internal/stats) to avoid double bookkeeping.
type Project struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"clientId"`
	Title           string          `json:"title"`
	Category        ProjectCategory `json:"category"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"` // free-form: Active, In Progress, Completed, On Hold, ...
	LiveURL         string          `json:"liveUrl,omitempty"`
	StartDate       string          `json:"startDate,omitempty"` // YYYY-MM-DD
	Deadline        string          `json:"deadline,omitempty"`  // YYYY-MM-DD
	Description     string          `json:"description,omitempty"`
	Requirements    []Requirement   `json:"requirements"`
	Files           []ProjectFile   `json:"files"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
