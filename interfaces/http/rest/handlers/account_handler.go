package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"beacon-backend/application/service"
	pkgerrors "beacon-backend/pkg/errors"
)

// AccountHandler serves the unauthenticated account endpoints
type AccountHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(svc service.NotificationService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, logger: logger}
}

// GetAPIVersion handles GET /version
func (h *AccountHandler) GetAPIVersion(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.GetAPIVersion(r.Context(), &service.GetAPIVersionRequest{})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// SignIn handles POST /signin
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req service.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, pkgerrors.NewInvalidArgument("request body is not valid JSON"))
		return
	}

	resp, err := h.svc.SignIn(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// SignUp handles POST /signup
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req service.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, pkgerrors.NewInvalidArgument("request body is not valid JSON"))
		return
	}

	resp, err := h.svc.SignUp(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusCreated, resp)
}
