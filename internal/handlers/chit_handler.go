package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/models"
)

// ListChits returns all chit groups.
func (h *Handler) ListChits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Chits()})
}

// CreateChit registers a new chit group.
func (h *Handler) CreateChit(c *gin.Context) {
	var chit models.ChitGroup
	if err := c.ShouldBindJSON(&chit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid chit group", "error": err.Error()})
		return
	}
	if chit.TotalMonths < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "totalMonths must be at least 1"})
		return
	}
	if chit.MaxMembers < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "maxMembers must not be negative"})
		return
	}

	chit = h.store.AddChit(chit)
	c.JSON(http.StatusCreated, gin.H{"data": chit})
}

// UpdateChit replaces a chit group definition.
func (h *Handler) UpdateChit(c *gin.Context) {
	var chit models.ChitGroup
	if err := c.ShouldBindJSON(&chit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid chit group", "error": err.Error()})
		return
	}
	chit.ChitGroupID = c.Param("id")

	if !h.store.UpdateChit(chit) {
		c.JSON(http.StatusNotFound, gin.H{"message": "chit group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chit})
}

// GroupSummary returns the dashboard aggregation for one group.
func (h *Handler) GroupSummary(c *gin.Context) {
	summary, ok := h.store.SummarizeGroup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "chit group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GroupMemberDues returns the per-member positions for one group.
func (h *Handler) GroupMemberDues(c *gin.Context) {
	dues, ok := h.store.MemberDues(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "chit group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dues})
}
