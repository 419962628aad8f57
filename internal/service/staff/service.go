package staff

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/staff"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/email"
	"github.com/oa-project/office-backend-go/internal/pkg/excel"
	"github.com/oa-project/office-backend-go/internal/pkg/jwt"
)

type StaffServiceImpl struct {
	user.UserRepository
	department.DepartmentRepository
	jwtService  jwt.Service
	mailer      email.Mailer
	frontendURL string
}

func NewStaffService(
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	jwtService jwt.Service,
	mailer email.Mailer,
	frontendURL string,
) staff.StaffService {
	return &StaffServiceImpl{
		UserRepository:       userRepo,
		DepartmentRepository: departmentRepo,
		jwtService:           jwtService,
		mailer:               mailer,
		frontendURL:          frontendURL,
	}
}

// Add implements staff.StaffService. The invitee lands in the inviter's
// department with a disabled account; they cannot log in until the mailed
// activation link is used.
func (s *StaffServiceImpl) Add(ctx context.Context, inviter user.User, req staff.AddStaffRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if !inviter.Superuser {
		if _, err := s.leaderDepartment(ctx, inviter); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Telephone:    req.Telephone,
		PasswordHash: string(hash),
		Status:       user.StatusDisabled,
		DepartmentID: inviter.DepartmentID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.sendActivationEmail(created)

	return user.ToResponse(created), nil
}

// Activate implements staff.StaffService.
func (s *StaffServiceImpl) Activate(ctx context.Context, token string) (user.UserResponse, error) {
	userID, err := s.jwtService.ParseActivationToken(token)
	if err != nil {
		return user.UserResponse{}, staff.ErrActivationInvalid
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, staff.ErrActivationInvalid
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	switch u.Status {
	case user.StatusActive:
		return user.UserResponse{}, staff.ErrAlreadyActive
	case user.StatusLocked:
		return user.UserResponse{}, staff.ErrAccountLocked
	}

	if err := s.UserRepository.UpdateStatus(ctx, u.ID, user.StatusActive); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to activate user: %w", err)
	}

	u.Status = user.StatusActive
	return user.ToResponse(u), nil
}

// List implements staff.StaffService. Superusers get the whole directory;
// everyone else gets their own department. Each group lists the leader
// first, then members by join date.
func (s *StaffServiceImpl) List(ctx context.Context, caller user.User) (staff.StaffListResponse, error) {
	var (
		users []user.User
		err   error
	)
	if caller.Superuser {
		users, err = s.UserRepository.List(ctx)
	} else if caller.DepartmentID != nil {
		users, err = s.UserRepository.ListByDepartment(ctx, *caller.DepartmentID)
	} else {
		users = []user.User{caller}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	leaderByDept := make(map[string]string, len(departments))
	for _, d := range departments {
		if d.LeaderID != nil {
			leaderByDept[d.ID] = *d.LeaderID
		}
	}

	response := make(staff.StaffListResponse)
	for _, u := range users {
		groupName := "unassigned"
		isLeader := false
		if u.DepartmentID != nil {
			if u.DepartmentName != nil {
				groupName = *u.DepartmentName
			}
			isLeader = leaderByDept[*u.DepartmentID] == u.ID
		}

		group := response[groupName]
		if isLeader {
			group.Leader = append(group.Leader, user.ToResponse(u))
		} else {
			group.Members = append(group.Members, user.ToResponse(u))
		}
		response[groupName] = group
	}

	for name, group := range response {
		sort.SliceStable(group.Members, func(i, j int) bool {
			return group.Members[i].DateJoined.Before(group.Members[j].DateJoined)
		})
		response[name] = group
	}

	return response, nil
}

// Download implements staff.StaffService. A leader's export silently drops
// rows outside their department; if nothing survives the filter the call is
// treated as a permission failure rather than an empty workbook.
func (s *StaffServiceImpl) Download(ctx context.Context, caller user.User, ids []string) (*excelize.File, error) {
	if len(ids) == 0 {
		return nil, staff.ErrNoStaffSelected
	}

	users, err := s.UserRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff by ids: %w", err)
	}

	if !caller.Superuser {
		dept, err := s.leaderDepartment(ctx, caller)
		if err != nil {
			return nil, staff.ErrDownloadPermission
		}

		filtered := users[:0]
		for _, u := range users {
			if u.DepartmentID != nil && *u.DepartmentID == dept.ID {
				filtered = append(filtered, u)
			}
		}
		if len(filtered) == 0 {
			return nil, staff.ErrDownloadPermission
		}
		users = filtered
	}

	return excel.StaffWorkbook(users)
}

// UpdateDepartmentLeader implements staff.StaffService. Only a superuser or
// the department's manager may reassign its leader, and the new leader must
// already belong to the department.
func (s *StaffServiceImpl) UpdateDepartmentLeader(ctx context.Context, caller user.User, departmentID, newLeaderID string) error {
	dept, err := s.DepartmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}

	if !caller.Superuser && !dept.IsManagedBy(caller.ID) {
		return user.ErrPermissionDenied
	}

	newLeader, err := s.UserRepository.GetByID(ctx, newLeaderID)
	if err != nil {
		return err
	}
	if newLeader.DepartmentID == nil || *newLeader.DepartmentID != dept.ID {
		return department.ErrLeaderNotInDept
	}

	return s.DepartmentRepository.UpdateLeader(ctx, dept.ID, newLeader.ID)
}

func (s *StaffServiceImpl) leaderDepartment(ctx context.Context, u user.User) (department.Department, error) {
	dept, err := s.DepartmentRepository.GetByLeaderID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.Department{}, staff.ErrOnboardPermission
		}
		return department.Department{}, fmt.Errorf("failed to get department by leader: %w", err)
	}
	return dept, nil
}

func (s *StaffServiceImpl) sendActivationEmail(u user.User) {
	token, err := s.jwtService.GenerateActivationToken(u.ID)
	if err != nil {
		return
	}

	link := fmt.Sprintf("%s/activate?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nAn account has been created for you. Activate it within 72 hours:\n\n%s\n",
		u.Username, link,
	)
	s.mailer.Enqueue(u.Email, "Activate your account", body)
}
