package ledger

import (
	"math"
	"testing"

	"github.com/rgopal/chitfund/internal/models"
)

func TestSummarize(t *testing.T) {
	chit := testChit()
	memberships := []models.GroupMembership{
		{GroupMembershipID: "gm1", ChitGroupID: "g1", MemberID: "m1", TokenNo: 1},
		{GroupMembershipID: "gm2", ChitGroupID: "g1", MemberID: "m2", TokenNo: 2},
		{GroupMembershipID: "gm3", ChitGroupID: "other", MemberID: "m3", TokenNo: 1},
	}
	installments := append(
		rows(chit, "m1", nil, map[int]float64{1: 1000, 2: 400}, map[int]models.PaymentStatus{1: models.PaymentPaid, 2: models.PaymentPartial}),
		rows(chit, "m2", nil, nil, nil)...,
	)
	allotments := []models.Allotment{
		{AllotmentID: "a1", ChitGroupID: "g1", MemberID: "m1", MonthNo: 1, AllottedAmount: 4000, IsConfirmed: true},
		{AllotmentID: "a2", ChitGroupID: "g1", MemberID: "m2", MonthNo: 2, AllottedAmount: 9999, Revoked: true},
	}

	sum := Summarize(chit, memberships, installments, allotments)

	if sum.MemberCount != 2 {
		t.Errorf("MemberCount = %d, want 2", sum.MemberCount)
	}
	// 10 rows at 1000 each
	if math.Abs(sum.Collectable-10000) > 0.001 {
		t.Errorf("Collectable = %v, want 10000", sum.Collectable)
	}
	if math.Abs(sum.Collected-1400) > 0.001 {
		t.Errorf("Collected = %v, want 1400", sum.Collected)
	}
	if math.Abs(sum.Outstanding-8600) > 0.001 {
		t.Errorf("Outstanding = %v, want 8600", sum.Outstanding)
	}
	// Revoked payout must not count.
	if math.Abs(sum.PrizePaid-4000) > 0.001 {
		t.Errorf("PrizePaid = %v, want 4000", sum.PrizePaid)
	}
	if math.Abs(sum.NetBalance-(-2600)) > 0.001 {
		t.Errorf("NetBalance = %v, want -2600", sum.NetBalance)
	}
}

func TestMemberDues(t *testing.T) {
	chit := testChit()
	memberships := []models.GroupMembership{
		{GroupMembershipID: "gm1", ChitGroupID: "g1", MemberID: "m1", TokenNo: 1},
		{GroupMembershipID: "gm2", ChitGroupID: "g1", MemberID: "m2", TokenNo: 2},
	}
	installments := append(
		rows(chit, "m1", nil, map[int]float64{1: 1000}, map[int]models.PaymentStatus{1: models.PaymentPaid}),
		rows(chit, "m2", nil, nil, nil)...,
	)
	allotments := []models.Allotment{
		{AllotmentID: "a1", ChitGroupID: "g1", MemberID: "m1", MonthNo: 1, IsConfirmed: true},
	}

	dues := MemberDues(chit, memberships, installments, allotments)
	if len(dues) != 2 {
		t.Fatalf("len(dues) = %d, want 2", len(dues))
	}

	m1 := dues[0]
	if m1.MemberID != "m1" {
		t.Fatalf("dues[0].MemberID = %s, want m1", m1.MemberID)
	}
	if m1.TotalPaid != 1000 || m1.MonthsPaid != 1 || !m1.HasAllotted {
		t.Errorf("m1 = %+v, want paid 1000, 1 month paid, allotted", m1)
	}
	if m1.Balance != 4000 {
		t.Errorf("m1.Balance = %v, want 4000", m1.Balance)
	}

	m2 := dues[1]
	if m2.TotalPaid != 0 || m2.MonthsPaid != 0 || m2.HasAllotted {
		t.Errorf("m2 = %+v, want nothing paid, no allotment", m2)
	}
}
