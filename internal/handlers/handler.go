// Package handlers exposes the ledger over HTTP. Handlers validate, call
// into the store, and shape JSON responses; all business rules live in the
// store and ledger packages.
package handlers

import (
	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/store"
)

// Handler bundles the dependencies shared by all route handlers.
type Handler struct {
	store    *store.Store
	jwt      *auth.JWTManager
	tokenKey string // key for portal magic-link tokens
}

// New creates the handler set.
func New(s *store.Store, jwtManager *auth.JWTManager, tokenKey string) *Handler {
	return &Handler{
		store:    s,
		jwt:      jwtManager,
		tokenKey: tokenKey,
	}
}
