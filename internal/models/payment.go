package models

import "time"

// PaymentMode is the channel a payment was collected through.
type PaymentMode string

const (
	PayCash         PaymentMode = "cash"
	PayUPI          PaymentMode = "upi"
	PayBankTransfer PaymentMode = "bank_transfer"
)

// Payment is an append-only collection record. Payments are immutable once
// created; their amounts aggregate into the schedule row's PaidAmount. There
// is deliberately no idempotency key: repeated submissions create repeated
// credits.
type Payment struct {
	PaymentID   string `json:"paymentId"`
	ChitGroupID string `json:"chitGroupId"`
	MemberID    string `json:"memberId"`
	MonthNo     int    `json:"monthNo"`

	PaidAmount  float64     `json:"paidAmount"`
	PaymentDate time.Time   `json:"paymentDate"`
	PaymentMode PaymentMode `json:"paymentMode"`

	// ReferenceNo is the external transaction reference (UTR, receipt no).
	ReferenceNo string `json:"referenceNo"`

	// CollectedBy identifies the collecting operator.
	CollectedBy string `json:"collectedBy"`
}

// PaymentRequestStatus is the lifecycle state of a payment-link request.
type PaymentRequestStatus string

const (
	RequestCreated PaymentRequestStatus = "created"
	RequestSent    PaymentRequestStatus = "sent"
	RequestPaid    PaymentRequestStatus = "paid"
	RequestExpired PaymentRequestStatus = "expired"
)

// PaymentRequest tracks a payment link issued to a member for a specific
// month's installment.
type PaymentRequest struct {
	PaymentRequestID string `json:"paymentRequestId"`
	ChitGroupID      string `json:"chitGroupId"`
	MemberID         string `json:"memberId"`
	MonthNo          int    `json:"monthNo"`

	Amount         float64              `json:"amount"`
	PaymentLinkURL string               `json:"paymentLinkUrl"`
	Status         PaymentRequestStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	SentAt    time.Time `json:"sentAt,omitzero"`
}
