package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
	"github.com/oa-project/office-backend-go/internal/pkg/email"
	"github.com/oa-project/office-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.AttendanceTypeRepository
	user.UserRepository
	department.DepartmentRepository
	mailer email.Mailer
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	typeRepo attendance.AttendanceTypeRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	mailer email.Mailer,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                       db,
		AttendanceRepository:     attendanceRepo,
		AttendanceTypeRepository: typeRepo,
		UserRepository:           userRepo,
		DepartmentRepository:     departmentRepo,
		mailer:                   mailer,
	}
}

// Create implements attendance.AttendanceService. The approver is resolved
// from the live department hierarchy before anything is written; a request
// whose approver cannot be resolved is never persisted.
func (s *AttendanceServiceImpl) Create(ctx context.Context, requester user.User, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	var validationErrors validator.ValidationErrors

	if validator.IsEmpty(req.Title) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "title", Message: "Title is required"})
	}
	if validator.IsEmpty(req.AttendanceTypeID) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "attendance_type_id", Message: "Attendance type is required"})
	}

	startTime, startOK := validator.IsValidDateTime(req.StartTime)
	if !startOK {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "start_time", Message: "Start time must be a valid ISO8601 timestamp"})
	}
	endTime, endOK := validator.IsValidDateTime(req.EndTime)
	if !endOK {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "end_time", Message: "End time must be a valid ISO8601 timestamp"})
	}

	if len(validationErrors) > 0 {
		return attendance.AttendanceResponse{}, validationErrors
	}

	if !endTime.After(startTime) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTimeRange
	}

	if _, err := s.AttendanceTypeRepository.GetByID(ctx, req.AttendanceTypeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	dept, err := s.requesterDepartment(ctx, requester)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	approverID, err := ResolveApprover(requester, dept)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		ID:               uuid.NewString(),
		Title:            req.Title,
		RequestContent:   req.RequestContent,
		AttendanceTypeID: req.AttendanceTypeID,
		RequesterID:      requester.ID,
		ResponserID:      approverID,
		Status:           attendance.StatusPending,
		StartTime:        startTime,
		EndTime:          endTime,
	}
	if approverID == nil {
		// Board leader: nobody outranks them, the request is born approved.
		record.Status = attendance.StatusApproved
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance request: %w", err)
	}

	if approverID != nil {
		s.notifyApprover(ctx, *approverID, created)
	}

	return attendance.ToResponse(created), nil
}

// Decide implements attendance.AttendanceService. Only the responser fixed at
// creation time may decide, superusers included in the exclusion; the
// transition itself is a conditional update so concurrent decisions collapse
// to a single winner.
func (s *AttendanceServiceImpl) Decide(ctx context.Context, actor user.User, requestID string, req attendance.DecideAttendanceRequest) (attendance.AttendanceResponse, error) {
	decision := attendance.Status(req.Status)
	if !decision.IsDecision() {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidDecision
	}

	request, err := s.AttendanceRepository.GetByID(ctx, requestID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A decided request conflicts for everyone, approver or not.
	if request.Status != attendance.StatusPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}
	if request.ResponserID == nil || *request.ResponserID != actor.ID {
		return attendance.AttendanceResponse{}, attendance.ErrNotApprover
	}

	if err := s.AttendanceRepository.Decide(ctx, requestID, decision, req.ApprovalContent); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	decided, err := s.AttendanceRepository.GetByID(ctx, requestID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance request: %w", err)
	}

	s.notifyRequester(ctx, decided)

	return attendance.ToResponse(decided), nil
}

// List implements attendance.AttendanceService. The manager scope is the
// system-wide overview; every other scope collapses to the union of requests
// the caller filed or must approve.
func (s *AttendanceServiceImpl) List(ctx context.Context, caller user.User, scope attendance.ListScope, filter attendance.ListFilter) ([]attendance.AttendanceResponse, int64, error) {
	var (
		records []attendance.Attendance
		total   int64
		err     error
	)

	switch scope {
	case attendance.ScopeManager:
		records, total, err = s.AttendanceRepository.ListAll(ctx, filter)
	default:
		records, total, err = s.AttendanceRepository.ListInvolving(ctx, caller.ID, filter)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance requests: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, total, nil
}

// ListTypes implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListTypes(ctx context.Context) ([]attendance.AttendanceTypeResponse, error) {
	types, err := s.AttendanceTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance types: %w", err)
	}

	responses := make([]attendance.AttendanceTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, attendance.AttendanceTypeResponse{
			ID:        t.ID,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
		})
	}
	return responses, nil
}

// MyApprover implements attendance.AttendanceService. A nil response with a
// nil error means the caller's requests auto-approve.
func (s *AttendanceServiceImpl) MyApprover(ctx context.Context, caller user.User) (*user.UserResponse, error) {
	dept, err := s.requesterDepartment(ctx, caller)
	if err != nil {
		return nil, err
	}

	approverID, err := ResolveApprover(caller, dept)
	if err != nil {
		return nil, err
	}
	if approverID == nil {
		return nil, nil
	}

	approver, err := s.UserRepository.GetByID(ctx, *approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approver: %w", err)
	}

	response := user.ToResponse(approver)
	return &response, nil
}

func (s *AttendanceServiceImpl) requesterDepartment(ctx context.Context, u user.User) (*department.Department, error) {
	if u.DepartmentID == nil {
		return nil, nil
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, *u.DepartmentID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &dept, nil
}

func (s *AttendanceServiceImpl) notifyApprover(ctx context.Context, approverID string, request attendance.Attendance) {
	approver, err := s.UserRepository.GetByID(ctx, approverID)
	if err != nil {
		slog.WarnContext(ctx, "skipping approver notification", "attendance_id", request.ID, "error", err)
		return
	}

	subject := "Leave request awaiting your approval"
	body := fmt.Sprintf(
		"A leave request %q (%s to %s) was filed and is waiting for your decision.",
		request.Title,
		request.StartTime.Format(time.RFC3339),
		request.EndTime.Format(time.RFC3339),
	)
	s.mailer.Enqueue(approver.Email, subject, body)
}

func (s *AttendanceServiceImpl) notifyRequester(ctx context.Context, request attendance.Attendance) {
	requester, err := s.UserRepository.GetByID(ctx, request.RequesterID)
	if err != nil {
		slog.WarnContext(ctx, "skipping requester notification", "attendance_id", request.ID, "error", err)
		return
	}

	subject := fmt.Sprintf("Your leave request was %s", request.Status)
	body := fmt.Sprintf("Your leave request %q has been %s.", request.Title, request.Status)
	if request.ApprovalContent != nil && *request.ApprovalContent != "" {
		body += fmt.Sprintf(" Remark: %s", *request.ApprovalContent)
	}
	s.mailer.Enqueue(requester.Email, subject, body)
}
