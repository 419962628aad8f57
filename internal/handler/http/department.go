package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/staff"
	"github.com/oa-project/office-backend-go/internal/handler/http/middleware"
	"github.com/oa-project/office-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateLeader(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentRepo department.DepartmentRepository
	staffService   staff.StaffService
}

func NewDepartmentHandler(departmentRepo department.DepartmentRepository, staffService staff.StaffService) DepartmentHandler {
	return &DepartmentHandlerImpl{
		departmentRepo: departmentRepo,
		staffService:   staffService,
	}
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	response.Success(w, responses)
}

// UpdateLeader implements DepartmentHandler.
func (h *DepartmentHandlerImpl) UpdateLeader(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req department.UpdateLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeader decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.DepartmentID == "" || req.NewLeaderID == "" {
		response.BadRequest(w, "department_id and new_leader_id are required", nil)
		return
	}

	if err := h.staffService.UpdateDepartmentLeader(r.Context(), caller, req.DepartmentID, req.NewLeaderID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department leader updated", nil)
}
