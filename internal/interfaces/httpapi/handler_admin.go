package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
)

func (h *Handler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetAdmin")
	defer span.End()

	adminID := strings.TrimSpace(r.PathValue("adminID"))
	item, err := h.adminService.GetAdmin(ctx, adminID)
	if err != nil {
		h.logger.WarnContext(ctx, "get admin failed", "admin_id", adminID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminToDTO(item))
}

func (h *Handler) GetAdminStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetAdminStatistics")
	defer span.End()

	adminID := strings.TrimSpace(r.PathValue("adminID"))
	stats, err := h.adminService.GetStatistics(ctx, adminID)
	if err != nil {
		h.logger.WarnContext(ctx, "get admin statistics failed", "admin_id", adminID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminStatisticsDTO(stats))
}

func (h *Handler) UpdateAdminProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateAdminProfile")
	defer span.End()

	adminID := strings.TrimSpace(r.PathValue("adminID"))
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adminService.UpdateProfile(ctx, sessionFromContext(ctx), adminID, admin.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update admin profile failed", "admin_id", adminID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminToDTO(item))
}

func (h *Handler) RecordAdminStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RecordAdminStatistics")
	defer span.End()

	adminID := strings.TrimSpace(r.PathValue("adminID"))
	var req recordStatisticsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats := admin.Statistics(req)
	if err := h.adminService.RecordStatistics(ctx, sessionFromContext(ctx), adminID, stats); err != nil {
		h.logger.WarnContext(ctx, "record admin statistics failed", "admin_id", adminID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adminStatisticsDTO(stats))
}

type updateProfileRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

type recordStatisticsRequest struct {
	TotalEmails     int    `json:"totalEmails" validate:"gte=0"`
	AutoReplied     int    `json:"autoReplied" validate:"gte=0"`
	ManualReplies   int    `json:"manualReplies" validate:"gte=0"`
	AvgResponseTime string `json:"avgResponseTime" validate:"max=32"`
	SuccessRate     string `json:"successRate" validate:"max=32"`
	LastActive      string `json:"lastActive" validate:"max=64"`
}
