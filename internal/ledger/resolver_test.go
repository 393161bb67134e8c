package ledger

import (
	"math"
	"testing"

	"github.com/rgopal/chitfund/internal/models"
)

func testChit() models.ChitGroup {
	return models.ChitGroup{
		ChitGroupID:                "g1",
		Name:                       "Test Chit",
		TotalMonths:                5,
		MonthlyInstallmentRegular:  1000,
		MonthlyInstallmentAllotted: 1200,
	}
}

func rows(chit models.ChitGroup, memberID string, dueByMonth map[int]float64, paidByMonth map[int]float64, statusByMonth map[int]models.PaymentStatus) []models.InstallmentSchedule {
	var out []models.InstallmentSchedule
	for i := 1; i <= chit.TotalMonths; i++ {
		due := chit.MonthlyInstallmentRegular
		if v, ok := dueByMonth[i]; ok {
			due = v
		}
		status := models.PaymentPending
		if v, ok := statusByMonth[i]; ok {
			status = v
		}
		out = append(out, models.InstallmentSchedule{
			ScheduleID:  "s",
			ChitGroupID: chit.ChitGroupID,
			MemberID:    memberID,
			MonthNo:     i,
			DueAmount:   due,
			PaidAmount:  paidByMonth[i],
			Status:      status,
		})
	}
	return out
}

func TestInstallmentAmount(t *testing.T) {
	chit := testChit()
	won := models.Allotment{
		AllotmentID: "a1",
		ChitGroupID: "g1",
		MemberID:    "m1",
		MonthNo:     2,
		IsConfirmed: true,
	}
	revoked := won
	revoked.Revoked = true
	revoked.IsConfirmed = false

	tests := []struct {
		name       string
		allotments []models.Allotment
		monthNo    int
		want       float64
	}{
		{"no allotment uses regular rate", nil, 3, 1000},
		{"month before allotment uses regular rate", []models.Allotment{won}, 1, 1000},
		{"allotment month keeps stored due amount", []models.Allotment{won}, 2, 1000},
		{"month after allotment uses allotted rate", []models.Allotment{won}, 3, 1200},
		{"revoked allotment does not count", []models.Allotment{revoked}, 3, 1000},
	}

	installments := rows(chit, "m1", nil, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallmentAmount(chit, tt.allotments, installments, "m1", tt.monthNo)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("InstallmentAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	chit := testChit()
	won := models.Allotment{
		AllotmentID: "a1",
		ChitGroupID: "g1",
		MemberID:    "m1",
		MonthNo:     1,
		IsConfirmed: true,
	}

	tests := []struct {
		name         string
		allotments   []models.Allotment
		installments []models.InstallmentSchedule
		monthNo      int
		want         InstallmentStatus
	}{
		{
			name:         "no schedule row returns zeros and N/A",
			installments: nil,
			monthNo:      1,
			want:         InstallmentStatus{Status: models.PaymentNotScheduled},
		},
		{
			name:         "pending row with no payments",
			installments: rows(chit, "m1", nil, nil, nil),
			monthNo:      1,
			want:         InstallmentStatus{Due: 1000, Paid: 0, Balance: 1000, Status: models.PaymentPending},
		},
		{
			name:         "partial payment reduces balance",
			installments: rows(chit, "m1", nil, map[int]float64{1: 400}, map[int]models.PaymentStatus{1: models.PaymentPartial}),
			monthNo:      1,
			want:         InstallmentStatus{Due: 1000, Paid: 400, Balance: 600, Status: models.PaymentPartial},
		},
		{
			name:         "overpayment clamps balance at zero",
			installments: rows(chit, "m1", nil, map[int]float64{1: 1500}, map[int]models.PaymentStatus{1: models.PaymentPaid}),
			monthNo:      1,
			want:         InstallmentStatus{Due: 1000, Paid: 1500, Balance: 0, Status: models.PaymentPaid},
		},
		{
			name:         "allotted member owes higher rate after prize month",
			allotments:   []models.Allotment{won},
			installments: rows(chit, "m1", map[int]float64{2: 1200, 3: 1200, 4: 1200, 5: 1200}, nil, nil),
			monthNo:      3,
			want:         InstallmentStatus{Due: 1200, Paid: 0, Balance: 1200, Status: models.PaymentPending},
		},
		{
			// Stored status is returned verbatim even when due is recomputed;
			// the resolver does not second-guess the schedule.
			name:         "stored status trusted over derived state",
			allotments:   []models.Allotment{won},
			installments: rows(chit, "m1", nil, map[int]float64{3: 1000}, map[int]models.PaymentStatus{3: models.PaymentPaid}),
			monthNo:      3,
			want:         InstallmentStatus{Due: 1200, Paid: 1000, Balance: 200, Status: models.PaymentPaid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(chit, tt.allotments, tt.installments, "m1", tt.monthNo)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestActiveAllotment(t *testing.T) {
	allotments := []models.Allotment{
		{AllotmentID: "a1", ChitGroupID: "g1", MemberID: "m1", MonthNo: 1, IsConfirmed: false, Revoked: true},
		{AllotmentID: "a2", ChitGroupID: "g1", MemberID: "m1", MonthNo: 3, IsConfirmed: true},
		{AllotmentID: "a3", ChitGroupID: "g2", MemberID: "m1", MonthNo: 2, IsConfirmed: true},
	}

	got, ok := ActiveAllotment(allotments, "g1", "m1")
	if !ok || got.AllotmentID != "a2" {
		t.Errorf("ActiveAllotment() = %+v, %v; want a2", got, ok)
	}

	if _, ok := ActiveAllotment(allotments, "g1", "m2"); ok {
		t.Error("expected no active allotment for m2")
	}

	got, ok = MonthAllotment(allotments, "g1", 3)
	if !ok || got.AllotmentID != "a2" {
		t.Errorf("MonthAllotment() = %+v, %v; want a2", got, ok)
	}
	if _, ok := MonthAllotment(allotments, "g1", 1); ok {
		t.Error("revoked allotment should not claim its month")
	}
}
