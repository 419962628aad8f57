package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oa-project/office-backend-go/internal/domain/staff"
	"github.com/oa-project/office-backend-go/internal/handler/http/middleware"
	"github.com/oa-project/office-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Add implements StaffHandler.
func (h *StaffHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req staff.AddStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Add(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member invited", created)
}

// Activate implements StaffHandler. Unauthenticated: the caller proves
// themselves with the mailed token alone.
func (h *StaffHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.BadRequest(w, "Activation token is required", nil)
		return
	}

	activated, err := h.staffService.Activate(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account activated", activated)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	listing, err := h.staffService.List(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listing)
}

// Download implements StaffHandler. The body names the staff to export; the
// reply is an xlsx attachment rather than JSON.
func (h *StaffHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DownloadStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workbook, err := h.staffService.Download(r.Context(), caller, req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="staff.xlsx"`)
	if err := workbook.Write(w); err != nil {
		slog.Error("DownloadStaff write error", "error", err)
	}
}
