package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/scoreboard/internal/api/middleware"
	"github.com/mcoot/scoreboard/internal/api/request"
	"github.com/mcoot/scoreboard/internal/api/response"
	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/services/identity"
)

// IdentityHandler handles identifier resolution and sign-in
type IdentityHandler struct {
	resolver *identity.Resolver
	backend  backend.Source
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(resolver *identity.Resolver, src backend.Source) *IdentityHandler {
	return &IdentityHandler{
		resolver: resolver,
		backend:  src,
	}
}

// Resolve handles POST /api/v1/identity/resolve
func (h *IdentityHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req request.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	email, err := h.resolver.ResolveIdentifierToEmail(r.Context(), req.Identifier)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Resolve{Email: email})
}

// Login handles POST /api/v1/auth/login
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.resolver.SignIn(r.Context(), req.Identifier, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/auth/logout
func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	hs, err := h.backend.Wait(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	client, err := hs.AuthClient()
	if err != nil {
		WriteError(w, err)
		return
	}
	if session != nil {
		client.SignOut(session.Token)
	}
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromModel(*user))
}
