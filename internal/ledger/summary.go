package ledger

import "github.com/rgopal/chitfund/internal/models"

// GroupSummary aggregates the financial position of one chit group.
type GroupSummary struct {
	ChitGroupID string  `json:"chitGroupId"`
	MemberCount int     `json:"memberCount"`
	Collectable float64 `json:"collectable"` // sum of due amounts across the schedule
	Collected   float64 `json:"collected"`   // sum of paid amounts
	Outstanding float64 `json:"outstanding"` // sum of per-row positive balances
	PrizePaid   float64 `json:"prizePaid"`   // sum of confirmed, non-revoked payouts
	NetBalance  float64 `json:"netBalance"`  // Collected - PrizePaid
}

// MemberDue is one member's aggregate position within a group.
type MemberDue struct {
	MemberID    string  `json:"memberId"`
	TotalDue    float64 `json:"totalDue"`
	TotalPaid   float64 `json:"totalPaid"`
	Balance     float64 `json:"balance"`
	MonthsPaid  int     `json:"monthsPaid"`
	HasAllotted bool    `json:"hasAllotted"`
}

// Summarize computes the group-level aggregation used by the dashboard. Due
// amounts come from the stored schedule rows; the allotment engine keeps
// those rows current, so no per-row re-resolution is needed here.
func Summarize(chit models.ChitGroup, memberships []models.GroupMembership, installments []models.InstallmentSchedule, allotments []models.Allotment) GroupSummary {
	sum := GroupSummary{ChitGroupID: chit.ChitGroupID}

	for _, m := range memberships {
		if m.ChitGroupID == chit.ChitGroupID {
			sum.MemberCount++
		}
	}

	for _, s := range installments {
		if s.ChitGroupID != chit.ChitGroupID {
			continue
		}
		sum.Collectable += s.DueAmount
		sum.Collected += s.PaidAmount
		if bal := s.DueAmount - s.PaidAmount; bal > 0 {
			sum.Outstanding += bal
		}
	}

	for _, a := range allotments {
		if a.ChitGroupID == chit.ChitGroupID && a.Active() {
			sum.PrizePaid += a.AllottedAmount
		}
	}

	sum.NetBalance = sum.Collected - sum.PrizePaid
	return sum
}

// MemberDues computes the per-member aggregate positions for one group, in
// enrollment order.
func MemberDues(chit models.ChitGroup, memberships []models.GroupMembership, installments []models.InstallmentSchedule, allotments []models.Allotment) []MemberDue {
	var dues []MemberDue
	for _, m := range memberships {
		if m.ChitGroupID != chit.ChitGroupID {
			continue
		}
		due := MemberDue{MemberID: m.MemberID}
		for _, s := range installments {
			if s.ChitGroupID != chit.ChitGroupID || s.MemberID != m.MemberID {
				continue
			}
			due.TotalDue += s.DueAmount
			due.TotalPaid += s.PaidAmount
			if s.Status == models.PaymentPaid {
				due.MonthsPaid++
			}
		}
		if due.Balance = due.TotalDue - due.TotalPaid; due.Balance < 0 {
			due.Balance = 0
		}
		_, due.HasAllotted = ActiveAllotment(allotments, chit.ChitGroupID, m.MemberID)
		dues = append(dues, due)
	}
	return dues
}
