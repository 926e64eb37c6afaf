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

// ApplicationHandler serves the application lifecycle endpoints
type ApplicationHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(svc service.NotificationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, logger: logger}
}

// Provision handles POST /applications
func (h *ApplicationHandler) Provision(w http.ResponseWriter, r *http.Request) {
	var req service.ProvisionApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, pkgerrors.NewInvalidArgument("request body is not valid JSON"))
		return
	}
	req.Token = resolveToken(r, req.Token)

	resp, err := h.svc.ProvisionApplication(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusCreated, resp)
}

// RegenerateToken handles POST /applications/{applicationID}/token
func (h *ApplicationHandler) RegenerateToken(w http.ResponseWriter, r *http.Request) {
	req := service.RegenerateApplicationTokenRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
	}

	resp, err := h.svc.RegenerateApplicationToken(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// Delete handles DELETE /applications/{applicationID}
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	req := service.DeleteApplicationRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
	}

	resp, err := h.svc.DeleteApplication(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetInfo handles GET /applications/{applicationID}
func (h *ApplicationHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	req := service.GetApplicationInfoRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
	}

	resp, err := h.svc.GetApplicationInfo(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetMine handles GET /applications/mine
func (h *ApplicationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	req := service.GetMyApplicationsRequest{Token: bearerToken(r)}

	resp, err := h.svc.GetMyApplications(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// Search handles GET /applications/search
func (h *ApplicationHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	req := service.SearchForApplicationsRequest{
		Token: bearerToken(r),
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}

	resp, err := h.svc.SearchForApplications(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// Follow handles POST /applications/{applicationID}/follow
func (h *ApplicationHandler) Follow(w http.ResponseWriter, r *http.Request) {
	req := service.FollowApplicationRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
	}

	resp, err := h.svc.FollowApplication(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// Unfollow handles DELETE /applications/{applicationID}/follow
func (h *ApplicationHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	req := service.UnfollowApplicationRequest{
		Token:         bearerToken(r),
		ApplicationID: chi.URLParam(r, "applicationID"),
	}

	resp, err := h.svc.UnfollowApplication(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}
