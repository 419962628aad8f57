package http

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/handler/http/middleware"
	"github.com/oa-project/office-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	MyApprover(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance request created", created)
}

// Decide implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req attendance.DecideAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.attendanceService.Decide(r.Context(), caller, requestID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}

// List implements AttendanceHandler. The `who` query parameter selects the
// scope; page and page_size control pagination.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	scope := attendance.ListScope(r.URL.Query().Get("who"))
	filter := attendance.ListFilter{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 10),
	}

	requests, total, err := h.attendanceService.List(r.Context(), caller, scope, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, &response.Meta{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	})
}

// ListTypes implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.attendanceService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// MyApprover implements AttendanceHandler. A null payload means the caller's
// requests auto-approve.
func (h *AttendanceHandlerImpl) MyApprover(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	approver, err := h.attendanceService.MyApprover(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, approver)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
