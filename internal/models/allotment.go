package models

import "time"

// Allotment is one confirmed prize draw: the assignment of a month's pooled
// payout to one member. Allotments are never hard-deleted; revocation is a
// soft delete that keeps the record for audit.
type Allotment struct {
	AllotmentID string `json:"allotmentId"`
	ChitGroupID string `json:"chitGroupId"`

	// MonthNo is the prize month within the group's tenure.
	MonthNo int `json:"monthNo"`

	// MemberID is the winning member.
	MemberID string `json:"memberId"`

	AllottedAmount float64 `json:"allottedAmount"`

	// IsConfirmed is true for the active allotment; cleared on revocation.
	IsConfirmed bool `json:"isConfirmed"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`

	Revoked   bool      `json:"revoked,omitempty"`
	RevokedAt time.Time `json:"revokedAt,omitzero"`
	RevokedBy string    `json:"revokedBy,omitempty"`
}

// Active reports whether the allotment still counts toward "already won"
// checks and due-amount resolution.
func (a Allotment) Active() bool {
	return a.IsConfirmed && !a.Revoked
}
