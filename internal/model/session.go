package model

import "time"

// Session binds a back-office login to the upstream CRM credential it acts
// with. Token is the opaque session identifier stored in the database; the
// browser only ever sees its signed form (pkg/auth).
type Session struct {
	Token     string
	APIToken  string // bearer credential for the upstream CRM API
	UserEmail string
	CreatedAt time.Time
	ExpiresAt time.Time
}
