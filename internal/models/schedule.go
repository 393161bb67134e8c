package models

import "time"

// PaymentStatus is the collection state of one schedule row.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"

	// PaymentNotScheduled is returned by the status resolver when no schedule
	// row exists for the requested (group, member, month). Never stored.
	PaymentNotScheduled PaymentStatus = "N/A"
)

// InstallmentSchedule is one row per (group, member, month) — the ground
// truth of what is owed. Rows are created in bulk when a membership is
// created and only deleted when the membership changes groups.
type InstallmentSchedule struct {
	ScheduleID  string `json:"scheduleId"`
	ChitGroupID string `json:"chitGroupId"`
	MemberID    string `json:"memberId"`

	// MonthNo is 1-based within the group's tenure.
	MonthNo int `json:"monthNo"`

	// DueDate is the group's start month plus (MonthNo-1) calendar months.
	DueDate time.Time `json:"dueDate"`

	// DueAmount starts at the group's regular rate and is rewritten by the
	// allotment engine for months after a prize win.
	DueAmount float64 `json:"dueAmount"`

	// PaidAmount accumulates across payments; never decremented.
	PaidAmount float64 `json:"paidAmount"`

	// PaidDate is the date of the most recent payment, zero if never paid.
	PaidDate time.Time `json:"paidDate,omitzero"`

	Status PaymentStatus `json:"status"`

	// IsPrizeMonth marks the month this member won the prize draw.
	IsPrizeMonth bool `json:"isPrizeMonth"`

	Remarks string `json:"remarks,omitempty"`
}
