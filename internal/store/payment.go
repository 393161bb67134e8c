package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgopal/chitfund/internal/models"
)

// RecordPayment appends a payment and applies it to the matching schedule
// row: paid amount accumulates, paid date advances, status recomputes to
// paid or partial. Payments with no matching row are still recorded but have
// no ledger effect (silent orphan). There is no dedup; repeated submissions
// create repeated credits.
func (s *Store) RecordPayment(p models.Payment) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.PaymentID == "" {
		p.PaymentID = uuid.New().String()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	s.state.Payments = append(s.state.Payments, p)

	for i := range s.state.Installments {
		row := &s.state.Installments[i]
		if row.ChitGroupID != p.ChitGroupID || row.MemberID != p.MemberID || row.MonthNo != p.MonthNo {
			continue
		}
		row.PaidAmount += p.PaidAmount
		row.PaidDate = p.PaymentDate
		if row.PaidAmount >= row.DueAmount {
			row.Status = models.PaymentPaid
		} else {
			row.Status = models.PaymentPartial
		}
		break
	}

	s.markDirty("record_payment")
	return p
}

// CreatePaymentRequest tracks a payment link issued for one member-month.
func (s *Store) CreatePaymentRequest(chitGroupID, memberID string, monthNo int, amount float64, linkURL string) models.PaymentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.PaymentRequest{
		PaymentRequestID: uuid.New().String(),
		ChitGroupID:      chitGroupID,
		MemberID:         memberID,
		MonthNo:          monthNo,
		Amount:           amount,
		PaymentLinkURL:   linkURL,
		Status:           models.RequestCreated,
		CreatedAt:        time.Now(),
	}
	s.state.PaymentRequests = append(s.state.PaymentRequests, req)
	s.markDirty("create_payment_request")
	return req
}

// MarkPaymentRequestSent records that the link was delivered.
func (s *Store) MarkPaymentRequestSent(paymentRequestID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.PaymentRequests {
		req := &s.state.PaymentRequests[i]
		if req.PaymentRequestID == paymentRequestID {
			req.Status = models.RequestSent
			req.SentAt = time.Now()
			s.markDirty("mark_payment_request_sent")
			return true
		}
	}
	return false
}
