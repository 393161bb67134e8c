// Package ledger holds the pure installment calculations: effective due
// amounts, installment status resolution and group-level aggregation. It has
// no state of its own; callers pass the entity collections in.
package ledger

import "github.com/rgopal/chitfund/internal/models"

// InstallmentStatus is the combined read-side view of one schedule row.
type InstallmentStatus struct {
	// Due is the current effective due amount, derived from the member's
	// allotment state rather than read verbatim from the schedule row.
	Due float64

	// Paid is the schedule row's accumulated paid amount.
	Paid float64

	// Balance is max(0, Due-Paid).
	Balance float64

	// Status is the schedule row's stored status, returned verbatim. It is
	// not recomputed from Due and Paid here, so it can disagree with Due if
	// the row drifted; callers that need a derived status must compute it
	// themselves. PaymentNotScheduled when no row exists.
	Status models.PaymentStatus
}

// ActiveAllotment returns the member's confirmed, non-revoked allotment in
// the group, if any. A member holds at most one.
func ActiveAllotment(allotments []models.Allotment, groupID, memberID string) (models.Allotment, bool) {
	for _, a := range allotments {
		if a.ChitGroupID == groupID && a.MemberID == memberID && a.Active() {
			return a, true
		}
	}
	return models.Allotment{}, false
}

// MonthAllotment returns the active allotment for the given group and month,
// if any, regardless of member.
func MonthAllotment(allotments []models.Allotment, groupID string, monthNo int) (models.Allotment, bool) {
	for _, a := range allotments {
		if a.ChitGroupID == groupID && a.MonthNo == monthNo && a.Active() {
			return a, true
		}
	}
	return models.Allotment{}, false
}

func findRow(installments []models.InstallmentSchedule, groupID, memberID string, monthNo int) (models.InstallmentSchedule, bool) {
	for _, s := range installments {
		if s.ChitGroupID == groupID && s.MemberID == memberID && s.MonthNo == monthNo {
			return s, true
		}
	}
	return models.InstallmentSchedule{}, false
}

// InstallmentAmount computes the effective due amount for one member-month:
// the regular rate up to and including the prize month, the allotted rate for
// every month after it. The prize month itself keeps whatever amount the
// schedule row holds, which is the amount in effect at confirmation time.
func InstallmentAmount(chit models.ChitGroup, allotments []models.Allotment, installments []models.InstallmentSchedule, memberID string, monthNo int) float64 {
	won, ok := ActiveAllotment(allotments, chit.ChitGroupID, memberID)
	if !ok {
		return chit.MonthlyInstallmentRegular
	}
	switch {
	case monthNo < won.MonthNo:
		return chit.MonthlyInstallmentRegular
	case monthNo == won.MonthNo:
		if row, ok := findRow(installments, chit.ChitGroupID, memberID, monthNo); ok && row.DueAmount != 0 {
			return row.DueAmount
		}
		return chit.MonthlyInstallmentRegular
	default:
		return chit.MonthlyInstallmentAllotted
	}
}

// Resolve combines schedule, allotment and payment state into a single
// due/paid/balance/status view for one member-month. Returns zeros and
// PaymentNotScheduled when no schedule row exists.
func Resolve(chit models.ChitGroup, allotments []models.Allotment, installments []models.InstallmentSchedule, memberID string, monthNo int) InstallmentStatus {
	row, ok := findRow(installments, chit.ChitGroupID, memberID, monthNo)
	if !ok {
		return InstallmentStatus{Status: models.PaymentNotScheduled}
	}

	due := InstallmentAmount(chit, allotments, installments, memberID, monthNo)
	balance := due - row.PaidAmount
	if balance < 0 {
		balance = 0
	}

	return InstallmentStatus{
		Due:     due,
		Paid:    row.PaidAmount,
		Balance: balance,
		Status:  row.Status,
	}
}
