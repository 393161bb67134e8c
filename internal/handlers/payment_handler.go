package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/ledger"
	"github.com/rgopal/chitfund/internal/middleware"
	"github.com/rgopal/chitfund/internal/models"
	"github.com/rgopal/chitfund/internal/notify"
)

// ListPayments returns payment records, optionally filtered by group and/or
// member.
func (h *Handler) ListPayments(c *gin.Context) {
	groupID := c.Query("chitGroupId")
	memberID := c.Query("memberId")

	var rows []models.Payment
	for _, p := range h.store.Payments() {
		if groupID != "" && p.ChitGroupID != groupID {
			continue
		}
		if memberID != "" && p.MemberID != memberID {
			continue
		}
		rows = append(rows, p)
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// RecordPayment appends a payment, applies it to the schedule, and returns
// the receipt artifacts (message text and WhatsApp link) for the caller to
// deliver.
func (h *Handler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment", "error": err.Error()})
		return
	}
	if p.PaidAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "paidAmount must be positive"})
		return
	}
	if p.CollectedBy == "" {
		p.CollectedBy = middleware.GetUserID(c)
	}

	p = h.store.RecordPayment(p)

	resp := gin.H{"data": p}
	if receipt, waLink, ok := h.buildReceipt(p); ok {
		resp["receipt"] = receipt
		resp["whatsappLink"] = waLink
	}
	c.JSON(http.StatusCreated, resp)
}

// buildReceipt renders the receipt text with the member's next two upcoming
// dues, and a WhatsApp link when the member's mobile number is usable.
func (h *Handler) buildReceipt(p models.Payment) (string, string, bool) {
	chit, ok := h.store.Chit(p.ChitGroupID)
	if !ok {
		return "", "", false
	}
	member, ok := h.store.Member(p.MemberID)
	if !ok {
		return "", "", false
	}

	allotments := h.store.Allotments()
	installments := h.store.Installments()

	var upcoming []string
	for i := 1; i <= 2; i++ {
		next := p.MonthNo + i
		if next > chit.TotalMonths {
			break
		}
		due := ledger.InstallmentAmount(chit, allotments, installments, p.MemberID, next)
		upcoming = append(upcoming, fmt.Sprintf("Month %d: ₹%.0f", next, due))
	}

	receipt := notify.Receipt(chit.Name, p.MonthNo, p.PaidAmount, upcoming)
	waLink, err := notify.WhatsAppLink(member.Mobile, receipt)
	if err != nil {
		return receipt, "", true
	}
	return receipt, waLink, true
}

// InstallmentStatus resolves the due/paid/balance/status view for one
// member-month.
func (h *Handler) InstallmentStatus(c *gin.Context) {
	monthNo, err := strconv.Atoi(c.Query("monthNo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "monthNo must be a number"})
		return
	}

	status := h.store.ResolveInstallment(c.Query("chitGroupId"), c.Query("memberId"), monthNo)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"due":     status.Due,
		"paid":    status.Paid,
		"balance": status.Balance,
		"status":  status.Status,
	}})
}

type paymentRequestRequest struct {
	ChitGroupID string `json:"chitGroupId" binding:"required"`
	MemberID    string `json:"memberId" binding:"required"`
	MonthNo     int    `json:"monthNo" binding:"required"`
}

// CreatePaymentRequest builds a payment reminder for one member-month: a
// tracked request record, the member's magic link, the UPI link, and the
// WhatsApp reminder ready to deliver.
func (h *Handler) CreatePaymentRequest(c *gin.Context) {
	var req paymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment request", "error": err.Error()})
		return
	}

	chit, ok := h.store.Chit(req.ChitGroupID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "chit group not found"})
		return
	}
	member, ok := h.store.Member(req.MemberID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
		return
	}

	status := h.store.ResolveInstallment(req.ChitGroupID, req.MemberID, req.MonthNo)
	if status.Status == models.PaymentNotScheduled {
		c.JSON(http.StatusNotFound, gin.H{"message": "no schedule row for that month"})
		return
	}

	appURL := h.store.Settings().AppURL
	magicLink := auth.MagicLink(appURL, member.MemberID, member.Mobile, h.tokenKey)
	record := h.store.CreatePaymentRequest(req.ChitGroupID, req.MemberID, req.MonthNo, status.Balance, magicLink)

	reminder := notify.PaymentReminder(member.Name, chit.Name, req.MonthNo, status.Balance, magicLink)
	resp := gin.H{
		"data":    record,
		"upiLink": notify.UPILink(chit.UPIID, status.Balance, fmt.Sprintf("%s month %d", chit.Name, req.MonthNo)),
		"message": reminder,
	}
	if waLink, err := notify.WhatsAppLink(member.Mobile, reminder); err == nil {
		resp["whatsappLink"] = waLink
	}
	c.JSON(http.StatusCreated, resp)
}

// MarkPaymentRequestSent records that a payment link was delivered.
func (h *Handler) MarkPaymentRequestSent(c *gin.Context) {
	if !h.store.MarkPaymentRequestSent(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "payment request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked sent"})
}

// ListPaymentRequests returns all tracked payment-link requests.
func (h *Handler) ListPaymentRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.PaymentRequests()})
}
