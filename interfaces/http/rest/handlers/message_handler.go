package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"beacon-backend/application/service"
	pkgerrors "beacon-backend/pkg/errors"
)

// MessageHandler serves the inbox and message endpoints
type MessageHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(svc service.NotificationService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, logger: logger}
}

// GetInbox handles GET /inbox
func (h *MessageHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	req := service.GetInboxRequest{
		Token: bearerToken(r),
		Limit: limit,
	}

	resp, err := h.svc.GetInbox(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// Send handles POST /applications/{applicationID}/messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, pkgerrors.NewInvalidArgument("request body is not valid JSON"))
		return
	}
	req.Token = resolveToken(r, req.Token)
	req.ApplicationID = chi.URLParam(r, "applicationID")

	resp, err := h.svc.SendMessage(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusCreated, resp)
}

// Dismiss handles POST /inbox/dismiss
func (h *MessageHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req service.DismissMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, pkgerrors.NewInvalidArgument("request body is not valid JSON"))
		return
	}
	req.Token = resolveToken(r, req.Token)

	resp, err := h.svc.DismissMessage(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetFullMessage handles GET /applications/{applicationID}/messages/{messageID}
func (h *MessageHandler) GetFullMessage(w http.ResponseWriter, r *http.Request) {
	req := service.GetFullMessageRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
		MessageID:     chi.URLParam(r, "messageID"),
	}

	resp, err := h.svc.GetFullMessage(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetDashboard handles GET /dashboard
func (h *MessageHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req := service.GetDashboardRequest{Token: bearerToken(r)}

	resp, err := h.svc.GetDashboard(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}
