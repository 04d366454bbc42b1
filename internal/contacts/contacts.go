// Package contacts maintains the organization contact directory used to
// point people at help channels. Rows are seeded from the knowledge corpus;
// a fixed fallback set covers the core agencies when the table is empty.
package contacts

import "github.com/google/uuid"

// Contact is one organization's help channels.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	Organization string    `json:"organization"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Hours        string    `json:"hours,omitempty"`
}

// UpsertCommand carries the fields for creating or refreshing a contact.
type UpsertCommand struct {
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Hours        string `json:"hours,omitempty"`
}

// Defaults returns the fixed core-agency directory served when no seeded
// contacts exist.
func Defaults() []Contact {
	return []Contact{
		{Organization: "국민연금공단", Phone: "1355", Website: "nps.or.kr"},
		{Organization: "국민건강보험공단", Phone: "1577-1000", Website: "nhis.or.kr"},
		{Organization: "보건복지상담센터", Phone: "129", Website: "bokjiro.go.kr"},
		{Organization: "국세상담센터", Phone: "126", Website: "hometax.go.kr"},
	}
}
