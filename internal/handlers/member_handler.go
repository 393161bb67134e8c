package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/models"
	"github.com/rgopal/chitfund/internal/store"
)

// ListMembers returns all members.
func (h *Handler) ListMembers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Members()})
}

// CreateMember registers a new member, optionally enrolling them into a
// group in the same call.
func (h *Handler) CreateMember(c *gin.Context) {
	var req struct {
		models.Member
		ChitGroupID string `json:"chitGroupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid member", "error": err.Error()})
		return
	}

	member := h.store.AddMember(req.Member)

	if req.ChitGroupID != "" {
		if _, ok := h.store.CreateMembership(member.MemberID, req.ChitGroupID, time.Now()); !ok {
			// Member is created either way; enrollment is reported separately
			// so the caller can surface the capacity rejection.
			c.JSON(http.StatusCreated, gin.H{"data": member, "enrolled": false, "message": "group at capacity or enrollment rejected"})
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"data": member, "enrolled": req.ChitGroupID != ""})
}

// UpdateMember replaces a member record, optionally moving their membership
// to another group.
func (h *Handler) UpdateMember(c *gin.Context) {
	var req struct {
		models.Member
		TargetGroupID string `json:"targetGroupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid member", "error": err.Error()})
		return
	}
	req.Member.MemberID = c.Param("id")

	if !h.store.UpdateMember(req.Member) {
		c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
		return
	}

	moved := false
	if req.TargetGroupID != "" {
		moved = h.store.ChangeMembershipGroup(req.Member.MemberID, req.TargetGroupID)
	}
	c.JSON(http.StatusOK, gin.H{"data": req.Member, "groupChanged": moved})
}

// BulkAddMembers registers a batch of members with optional enrollment.
func (h *Handler) BulkAddMembers(c *gin.Context) {
	var req []struct {
		Member      models.Member `json:"member"`
		ChitGroupID string        `json:"chitGroupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid batch", "error": err.Error()})
		return
	}

	items := make([]store.BulkItem, len(req))
	for i, r := range req {
		items[i] = store.BulkItem{Member: r.Member, ChitGroupID: r.ChitGroupID}
	}

	added := h.store.BulkAddMembers(items)
	c.JSON(http.StatusOK, gin.H{"data": added, "requested": len(req), "added": len(added)})
}

// ListMemberships returns all group memberships.
func (h *Handler) ListMemberships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Memberships()})
}

// CreateMembership enrolls an existing member into a group.
func (h *Handler) CreateMembership(c *gin.Context) {
	var req struct {
		MemberID    string `json:"memberId" binding:"required"`
		ChitGroupID string `json:"chitGroupId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "memberId and chitGroupId required"})
		return
	}

	ms, ok := h.store.CreateMembership(req.MemberID, req.ChitGroupID, time.Now())
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"message": "enrollment rejected: duplicate membership or group at capacity"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": ms})
}

// ListInstallments returns schedule rows, optionally filtered by group
// and/or member.
func (h *Handler) ListInstallments(c *gin.Context) {
	groupID := c.Query("chitGroupId")
	memberID := c.Query("memberId")

	var rows []models.InstallmentSchedule
	for _, row := range h.store.Installments() {
		if groupID != "" && row.ChitGroupID != groupID {
			continue
		}
		if memberID != "" && row.MemberID != memberID {
			continue
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
