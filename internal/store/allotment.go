package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rgopal/chitfund/internal/ledger"
	"github.com/rgopal/chitfund/internal/models"
)

var (
	// ErrGroupNotFound means the referenced chit group does not exist.
	ErrGroupNotFound = errors.New("chit group not found")

	// ErrAllotmentNotFound means the referenced allotment does not exist.
	ErrAllotmentNotFound = errors.New("allotment not found")

	// ErrMonthAllotted means the month already has a confirmed allotment.
	ErrMonthAllotted = errors.New("month already has a confirmed allotment")

	// ErrMemberAllotted means the member already holds an active allotment
	// in the group.
	ErrMemberAllotted = errors.New("member already holds an active allotment in this group")
)

// ConfirmAllotment records a prize draw: the allotment is inserted confirmed,
// the winner's prize-month row is flagged, and every later row of the winner
// switches to the allotted rate. Rows at or before the prize month keep
// their existing due amounts.
//
// Preconditions enforced here: one active allotment per member per group,
// and one active allotment per month per group. The winner's payment
// eligibility for the prize month is the caller's check.
func (s *Store) ConfirmAllotment(chitGroupID string, monthNo int, memberID string, amount float64, createdBy string) (models.Allotment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chit, ok := s.chitLocked(chitGroupID)
	if !ok {
		return models.Allotment{}, ErrGroupNotFound
	}
	if _, taken := ledger.MonthAllotment(s.state.Allotments, chitGroupID, monthNo); taken {
		return models.Allotment{}, ErrMonthAllotted
	}
	if _, won := ledger.ActiveAllotment(s.state.Allotments, chitGroupID, memberID); won {
		return models.Allotment{}, ErrMemberAllotted
	}

	allotment := models.Allotment{
		AllotmentID:    uuid.New().String(),
		ChitGroupID:    chitGroupID,
		MonthNo:        monthNo,
		MemberID:       memberID,
		AllottedAmount: amount,
		IsConfirmed:    true,
		CreatedAt:      time.Now(),
		CreatedBy:      createdBy,
	}
	s.state.Allotments = append(s.state.Allotments, allotment)
	s.applyAllotmentLocked(chit, allotment)

	s.markDirty("confirm_allotment")
	return allotment, nil
}

// UpdateAllotment reassigns the winner, month and/or amount of an existing
// allotment. The old allotment's schedule side-effects are reverted first
// (using the old member and month), then the new values are reapplied, so a
// pure amount change leaves the schedule untouched.
func (s *Store) UpdateAllotment(allotmentID, memberID string, monthNo int, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.state.Allotments {
		if a.AllotmentID == allotmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrAllotmentNotFound
	}
	old := s.state.Allotments[idx]

	chit, ok := s.chitLocked(old.ChitGroupID)
	if !ok {
		return ErrGroupNotFound
	}

	if memberID != old.MemberID {
		if _, won := ledger.ActiveAllotment(s.state.Allotments, old.ChitGroupID, memberID); won {
			return ErrMemberAllotted
		}
	}
	if monthNo != old.MonthNo {
		if taken, exists := ledger.MonthAllotment(s.state.Allotments, old.ChitGroupID, monthNo); exists && taken.AllotmentID != allotmentID {
			return ErrMonthAllotted
		}
	}

	s.revertAllotmentLocked(chit, old)

	updated := old
	updated.MemberID = memberID
	updated.MonthNo = monthNo
	updated.AllottedAmount = amount
	s.state.Allotments[idx] = updated

	s.applyAllotmentLocked(chit, updated)

	s.markDirty("update_allotment")
	return nil
}

// RevokeAllotment soft-deletes an allotment and reverts its schedule
// side-effects: the prize flag is cleared and later rows return to the
// regular rate. The record stays in the set permanently for audit; it no
// longer counts toward "already won" checks.
func (s *Store) RevokeAllotment(allotmentID, revokedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.state.Allotments {
		if a.AllotmentID == allotmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrAllotmentNotFound
	}

	a := &s.state.Allotments[idx]
	a.Revoked = true
	a.IsConfirmed = false
	a.RevokedAt = time.Now()
	a.RevokedBy = revokedBy

	chit, ok := s.chitLocked(a.ChitGroupID)
	if !ok {
		return ErrGroupNotFound
	}
	s.revertAllotmentLocked(chit, *a)

	s.markDirty("revoke_allotment")
	return nil
}

// applyAllotmentLocked sets the schedule side-effects of an allotment: the
// prize-month flag at exactly MonthNo, the allotted rate strictly after it.
func (s *Store) applyAllotmentLocked(chit models.ChitGroup, a models.Allotment) {
	for i := range s.state.Installments {
		row := &s.state.Installments[i]
		if row.ChitGroupID != a.ChitGroupID || row.MemberID != a.MemberID {
			continue
		}
		if row.MonthNo == a.MonthNo {
			row.IsPrizeMonth = true
		}
		if row.MonthNo > a.MonthNo {
			row.DueAmount = chit.MonthlyInstallmentAllotted
		}
	}
}

// revertAllotmentLocked is the exact inverse of applyAllotmentLocked.
func (s *Store) revertAllotmentLocked(chit models.ChitGroup, a models.Allotment) {
	for i := range s.state.Installments {
		row := &s.state.Installments[i]
		if row.ChitGroupID != a.ChitGroupID || row.MemberID != a.MemberID {
			continue
		}
		if row.MonthNo == a.MonthNo {
			row.IsPrizeMonth = false
		}
		if row.MonthNo > a.MonthNo {
			row.DueAmount = chit.MonthlyInstallmentRegular
		}
	}
}
