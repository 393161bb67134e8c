package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/ledger"
	"github.com/rgopal/chitfund/internal/models"
)

// PortalLogin validates a magic-link token and returns the member's full
// ledger view: their groups, schedule rows with resolved status, and
// payments. The token secret must match the member's mobile last-4.
func (h *Handler) PortalLogin(c *gin.Context) {
	opaque := c.Query("loginToken")
	if opaque == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "loginToken required"})
		return
	}

	token, err := auth.DecodeToken(opaque, h.tokenKey)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidToken.Error()})
		return
	}
	if token.Expired(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "login link has expired"})
		return
	}

	member, ok := h.store.Member(token.MemberID)
	if !ok || !member.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "member not found or inactive"})
		return
	}

	snap := h.store.Snapshot()

	type portalRow struct {
		models.InstallmentSchedule
		Resolved ledger.InstallmentStatus `json:"resolved"`
	}

	var groups []models.ChitGroup
	var rows []portalRow
	for _, ms := range snap.Memberships {
		if ms.MemberID != member.MemberID {
			continue
		}
		for _, chit := range snap.Chits {
			if chit.ChitGroupID != ms.ChitGroupID {
				continue
			}
			groups = append(groups, chit)
			for _, row := range snap.Installments {
				if row.ChitGroupID != chit.ChitGroupID || row.MemberID != member.MemberID {
					continue
				}
				rows = append(rows, portalRow{
					InstallmentSchedule: row,
					Resolved:            ledger.Resolve(chit, snap.Allotments, snap.Installments, member.MemberID, row.MonthNo),
				})
			}
		}
	}

	var payments []models.Payment
	for _, p := range snap.Payments {
		if p.MemberID == member.MemberID {
			payments = append(payments, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"member":       member,
		"groups":       groups,
		"installments": rows,
		"payments":     payments,
	}})
}

// MagicLink issues a fresh self-service link for a member (admin side).
func (h *Handler) MagicLink(c *gin.Context) {
	member, ok := h.store.Member(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
		return
	}

	link := auth.MagicLink(h.store.Settings().AppURL, member.MemberID, member.Mobile, h.tokenKey)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"magicLink": link}})
}
