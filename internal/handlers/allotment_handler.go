package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/middleware"
	"github.com/rgopal/chitfund/internal/models"
	"github.com/rgopal/chitfund/internal/store"
)

// ListAllotments returns all allotments, revoked ones included (audit view).
func (h *Handler) ListAllotments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Allotments()})
}

type confirmAllotmentRequest struct {
	ChitGroupID string  `json:"chitGroupId" binding:"required"`
	MonthNo     int     `json:"monthNo" binding:"required"`
	MemberID    string  `json:"memberId" binding:"required"`
	Amount      float64 `json:"allottedAmount" binding:"required"`
}

// ConfirmAllotment records a prize draw. The winner must have paid the prize
// month's installment; that eligibility check lives here at the call
// boundary, the engine enforces the uniqueness invariants itself.
func (h *Handler) ConfirmAllotment(c *gin.Context) {
	var req confirmAllotmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid allotment", "error": err.Error()})
		return
	}

	status := h.store.ResolveInstallment(req.ChitGroupID, req.MemberID, req.MonthNo)
	if status.Status != models.PaymentPaid {
		c.JSON(http.StatusConflict, gin.H{"message": "member has not paid the prize month installment"})
		return
	}

	allotment, err := h.store.ConfirmAllotment(req.ChitGroupID, req.MonthNo, req.MemberID, req.Amount, middleware.GetUserID(c))
	if err != nil {
		c.JSON(allotmentErrorStatus(err), gin.H{"message": err.Error()})
		return
	}

	slog.Info("Allotment confirmed",
		"allotment_id", allotment.AllotmentID,
		"chit_group_id", allotment.ChitGroupID,
		"month_no", allotment.MonthNo,
		"member_id", allotment.MemberID,
	)
	c.JSON(http.StatusCreated, gin.H{"data": allotment})
}

type updateAllotmentRequest struct {
	MemberID string  `json:"memberId" binding:"required"`
	MonthNo  int     `json:"monthNo" binding:"required"`
	Amount   float64 `json:"allottedAmount" binding:"required"`
}

// UpdateAllotment reassigns winner, month and/or amount.
func (h *Handler) UpdateAllotment(c *gin.Context) {
	var req updateAllotmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid allotment update", "error": err.Error()})
		return
	}

	if err := h.store.UpdateAllotment(c.Param("id"), req.MemberID, req.MonthNo, req.Amount); err != nil {
		c.JSON(allotmentErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "allotment updated"})
}

// RevokeAllotment soft-deletes an allotment and reverts the schedule.
func (h *Handler) RevokeAllotment(c *gin.Context) {
	if err := h.store.RevokeAllotment(c.Param("id"), middleware.GetUserID(c)); err != nil {
		c.JSON(allotmentErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "allotment revoked"})
}

func allotmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrAllotmentNotFound), errors.Is(err, store.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrMonthAllotted), errors.Is(err, store.ErrMemberAllotted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
