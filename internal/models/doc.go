// Package models defines the core domain records for the chit fund ledger.
//
// # Entities
//
//   - ChitGroup: a rotating savings pool with fixed value, tenure and rates
//   - Member: a person; independent of any group
//   - GroupMembership: links a member to a group with a token number
//   - InstallmentSchedule: one row per (group, member, month) — what is owed
//   - Allotment: a confirmed prize draw, soft-deleted on revocation
//   - Payment: an append-only collection record
//   - PaymentRequest: a tracked payment-link request
//   - User: an operator account (admin, collector, viewer, member)
//   - MasterSettings: process-wide configuration singleton
//   - Snapshot: the full aggregate, the unit of persistence and sync
//
// # Design Principles
//
// 1. **ID strings, not pointers**: relationships use opaque string IDs to
// avoid circular references and to keep the snapshot trivially serializable.
//
// 2. **Snapshot compatibility**: JSON tags match the field names of the
// snapshot produced by the original ledger application, so replicas written
// by either side merge cleanly under last-write-wins.
//
// 3. **Explicit optionals**: fields the snapshot may omit carry `omitempty`
// and zero values are meaningful (empty paid date means never paid).
package models
