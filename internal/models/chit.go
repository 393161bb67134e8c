package models

import "time"

// ChitStatus is the lifecycle state of a chit group.
type ChitStatus string

const (
	ChitActive ChitStatus = "active"
	ChitClosed ChitStatus = "closed"
)

// ChitGroup represents one rotating savings pool: a fixed set of members
// contributing monthly toward a fixed payout value over a fixed tenure.
type ChitGroup struct {
	// ChitGroupID is the unique identifier for the group (UUID format).
	ChitGroupID string `json:"chitGroupId"`

	// Name is the display name of the group.
	Name string `json:"name"`

	// ChitValue is the total pooled payout value.
	ChitValue float64 `json:"chitValue"`

	// TotalMonths is the tenure length. Always >= 1.
	TotalMonths int `json:"totalMonths"`

	// MonthlyInstallmentRegular is the due amount per month before a member
	// wins a prize draw.
	MonthlyInstallmentRegular float64 `json:"monthlyInstallmentRegular"`

	// MonthlyInstallmentAllotted is the due amount per month after a member
	// wins a prize draw; applies to months strictly after the prize month.
	MonthlyInstallmentAllotted float64 `json:"monthlyInstallmentAllotted"`

	// StartMonth anchors the schedule: month N is due StartMonth + (N-1) months.
	StartMonth time.Time `json:"startMonth"`

	Status ChitStatus `json:"status"`

	// UPIID is the payment-collection identifier used in payment links.
	UPIID string `json:"upiId"`

	// MaxMembers caps the group's membership count. Zero means uncapped.
	MaxMembers int `json:"maxMembers"`

	// WhatsAppGroupLink is an optional external group link.
	WhatsAppGroupLink string `json:"whatsappGroupLink,omitempty"`
}
