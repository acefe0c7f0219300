package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-api/internal/middleware"
	"pet-care-api/internal/service"
	"pet-care-api/pkg/apierror"
)

type DashboardHandler struct {
	records *service.RecordService
}

func NewDashboardHandler(records *service.RecordService) *DashboardHandler {
	return &DashboardHandler{records: records}
}

func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	data, err := h.records.Dashboard(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data)
}

func (h *DashboardHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	serviceType := chi.URLParam(r, "service_type")
	recordID := chi.URLParam(r, "record_id")
	if serviceType == "" || recordID == "" {
		writeError(w, apierror.New("BAD_REQUEST", "service type and record id are required", "", http.StatusBadRequest))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "unreadable request body", "", http.StatusBadRequest))
		return
	}

	record, err := h.records.UpdateRecord(r.Context(), user.ID, serviceType, recordID, body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, record)
}

func (h *DashboardHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	serviceType := chi.URLParam(r, "service_type")
	recordID := chi.URLParam(r, "record_id")
	if serviceType == "" || recordID == "" {
		writeError(w, apierror.New("BAD_REQUEST", "service type and record id are required", "", http.StatusBadRequest))
		return
	}

	if err := h.records.DeleteRecord(r.Context(), user.ID, serviceType, recordID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
