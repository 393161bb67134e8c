package models

import "time"

// Snapshot is the full aggregate of every entity collection plus the
// last-updated timestamp. It is the unit of local persistence and of cloud
// synchronization: replicas exchange whole snapshots and merge by comparing
// LastUpdated (last write wins).
type Snapshot struct {
	Users           []User                `json:"users"`
	Chits           []ChitGroup           `json:"chits"`
	Members         []Member              `json:"members"`
	Memberships     []GroupMembership     `json:"memberships"`
	Installments    []InstallmentSchedule `json:"installments"`
	Allotments      []Allotment           `json:"allotments"`
	Payments        []Payment             `json:"payments"`
	PaymentRequests []PaymentRequest      `json:"paymentRequests"`
	Settings        MasterSettings        `json:"settings"`
	LastUpdated     time.Time             `json:"lastUpdated"`
}

// Clone returns a deep copy of the snapshot. Callers receive clones so that
// no external component holds a mutable alias to store-internal state.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Users = append([]User(nil), s.Users...)
	out.Chits = append([]ChitGroup(nil), s.Chits...)
	out.Members = append([]Member(nil), s.Members...)
	out.Memberships = append([]GroupMembership(nil), s.Memberships...)
	out.Installments = append([]InstallmentSchedule(nil), s.Installments...)
	out.Allotments = append([]Allotment(nil), s.Allotments...)
	out.Payments = append([]Payment(nil), s.Payments...)
	out.PaymentRequests = append([]PaymentRequest(nil), s.PaymentRequests...)
	out.Settings.LateFeeRules = append([]byte(nil), s.Settings.LateFeeRules...)
	out.Settings.ReceiptTemplateConfig = append([]byte(nil), s.Settings.ReceiptTemplateConfig...)
	return out
}
