package models

import "time"

// Member represents a person enrolled with the fund. Members exist
// independently of any group; GroupMembership links them in.
type Member struct {
	// MemberID is the unique identifier for the member (UUID format).
	MemberID string `json:"memberId"`

	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`

	// IDProofType and IDProofNumber reference the member's identity document.
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`

	IsActive bool `json:"isActive"`
}

// GroupMembership links one member to one chit group. A member appears at
// most once per group.
type GroupMembership struct {
	// GroupMembershipID is the unique identifier for the link (UUID format).
	GroupMembershipID string `json:"groupMembershipId"`

	ChitGroupID string `json:"chitGroupId"`
	MemberID    string `json:"memberId"`

	// TokenNo is the member's fixed ordinal position within the group,
	// assigned as max(existing)+1 at join time. Unique per group.
	TokenNo int `json:"tokenNo"`

	JoinedOn time.Time `json:"joinedOn"`
}
