package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgopal/chitfund/internal/models"
)

// AddChit registers a new chit group, assigning an ID and defaulting the
// status to active.
func (s *Store) AddChit(chit models.ChitGroup) models.ChitGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	if chit.ChitGroupID == "" {
		chit.ChitGroupID = uuid.New().String()
	}
	if chit.Status == "" {
		chit.Status = models.ChitActive
	}
	s.state.Chits = append(s.state.Chits, chit)
	s.markDirty("add_chit")
	return chit
}

// UpdateChit replaces an existing group definition by ID.
func (s *Store) UpdateChit(chit models.ChitGroup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Chits {
		if s.state.Chits[i].ChitGroupID == chit.ChitGroupID {
			s.state.Chits[i] = chit
			s.markDirty("update_chit")
			return true
		}
	}
	return false
}

// AddMember registers a new member, assigning an ID.
func (s *Store) AddMember(member models.Member) models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	if member.MemberID == "" {
		member.MemberID = uuid.New().String()
	}
	s.state.Members = append(s.state.Members, member)
	s.markDirty("add_member")
	return member
}

// UpdateMember replaces an existing member record by ID.
func (s *Store) UpdateMember(member models.Member) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Members {
		if s.state.Members[i].MemberID == member.MemberID {
			s.state.Members[i] = member
			s.markDirty("update_member")
			return true
		}
	}
	return false
}

// CreateMembership enrolls a member into a group and generates the full
// installment schedule. The operation is a silent no-op (false) when the
// group does not exist, is at capacity, or the membership already exists —
// callers needing user feedback must pre-check capacity.
func (s *Store) CreateMembership(memberID, chitGroupID string, joinedOn time.Time) (models.GroupMembership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, ok := s.createMembershipLocked(memberID, chitGroupID, joinedOn)
	if !ok {
		return models.GroupMembership{}, false
	}
	s.markDirty("create_membership")
	return ms, true
}

func (s *Store) createMembershipLocked(memberID, chitGroupID string, joinedOn time.Time) (models.GroupMembership, bool) {
	chit, ok := s.chitLocked(chitGroupID)
	if !ok {
		return models.GroupMembership{}, false
	}

	for _, m := range s.state.Memberships {
		if m.ChitGroupID == chitGroupID && m.MemberID == memberID {
			return models.GroupMembership{}, false
		}
	}

	if chit.MaxMembers > 0 && s.groupCountLocked(chitGroupID) >= chit.MaxMembers {
		return models.GroupMembership{}, false
	}

	ms := models.GroupMembership{
		GroupMembershipID: uuid.New().String(),
		ChitGroupID:       chitGroupID,
		MemberID:          memberID,
		TokenNo:           s.nextTokenLocked(chitGroupID),
		JoinedOn:          joinedOn,
	}
	s.state.Memberships = append(s.state.Memberships, ms)
	s.state.Installments = append(s.state.Installments, buildSchedule(chit, ms)...)
	return ms, true
}

func (s *Store) groupCountLocked(chitGroupID string) int {
	n := 0
	for _, m := range s.state.Memberships {
		if m.ChitGroupID == chitGroupID {
			n++
		}
	}
	return n
}

func (s *Store) nextTokenLocked(chitGroupID string) int {
	max := 0
	for _, m := range s.state.Memberships {
		if m.ChitGroupID == chitGroupID && m.TokenNo > max {
			max = m.TokenNo
		}
	}
	return max + 1
}

// buildSchedule generates one pending row per tenure month: due date is the
// start month advanced by whole calendar months, due amount the regular rate.
func buildSchedule(chit models.ChitGroup, ms models.GroupMembership) []models.InstallmentSchedule {
	rows := make([]models.InstallmentSchedule, 0, chit.TotalMonths)
	for i := 1; i <= chit.TotalMonths; i++ {
		rows = append(rows, models.InstallmentSchedule{
			ScheduleID:  fmt.Sprintf("s_%s_%d", ms.GroupMembershipID, i),
			ChitGroupID: chit.ChitGroupID,
			MemberID:    ms.MemberID,
			MonthNo:     i,
			DueDate:     chit.StartMonth.AddDate(0, i-1, 0),
			DueAmount:   chit.MonthlyInstallmentRegular,
			PaidAmount:  0,
			Status:      models.PaymentPending,
		})
	}
	return rows
}

// BulkItem is one entry of a bulk enrollment: a new member and an optional
// group to join.
type BulkItem struct {
	Member      models.Member
	ChitGroupID string
}

// BulkAddMembers registers members in a batch. An item whose target group is
// at capacity is skipped entirely (silent, per-item); the rest proceed.
func (s *Store) BulkAddMembers(items []BulkItem) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []models.Member
	for _, item := range items {
		if item.ChitGroupID != "" {
			chit, ok := s.chitLocked(item.ChitGroupID)
			if !ok {
				continue
			}
			if chit.MaxMembers > 0 && s.groupCountLocked(item.ChitGroupID) >= chit.MaxMembers {
				continue
			}
		}

		member := item.Member
		if member.MemberID == "" {
			member.MemberID = uuid.New().String()
		}
		s.state.Members = append(s.state.Members, member)
		added = append(added, member)

		if item.ChitGroupID != "" {
			s.createMembershipLocked(member.MemberID, item.ChitGroupID, time.Now())
		}
	}
	if len(added) > 0 {
		s.markDirty("bulk_add_members")
	}
	return added
}

// ChangeMembershipGroup moves a member's first membership to another group:
// the old group's schedule rows are purged and a fresh schedule generated in
// the new group. Payments recorded against the old rows are NOT deleted but
// become orphaned from schedule lookups — a known data-loss trade-off of the
// group-change flow, kept deliberately.
func (s *Store) ChangeMembershipGroup(memberID, newGroupID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, m := range s.state.Memberships {
		if m.MemberID == memberID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	oldGroupID := s.state.Memberships[idx].ChitGroupID
	if oldGroupID == newGroupID {
		return false
	}

	chit, ok := s.chitLocked(newGroupID)
	if !ok {
		return false
	}
	if chit.MaxMembers > 0 && s.groupCountLocked(newGroupID) >= chit.MaxMembers {
		return false
	}

	// Purge the old group's rows for this member.
	kept := s.state.Installments[:0]
	for _, row := range s.state.Installments {
		if row.MemberID == memberID && row.ChitGroupID == oldGroupID {
			continue
		}
		kept = append(kept, row)
	}
	s.state.Installments = kept

	s.state.Memberships[idx].ChitGroupID = newGroupID
	s.state.Installments = append(s.state.Installments, buildSchedule(chit, s.state.Memberships[idx])...)

	s.markDirty("change_membership_group")
	return true
}
