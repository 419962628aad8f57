package inform

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/oa-project/office-backend-go/internal/domain/inform"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// publicSentinel in department_ids marks an announcement company-wide.
const publicSentinel = "0"

type InformServiceImpl struct {
	inform.InformRepository
}

func NewInformService(informRepo inform.InformRepository) inform.InformService {
	return &InformServiceImpl{InformRepository: informRepo}
}

// Create implements inform.InformService.
func (s *InformServiceImpl) Create(ctx context.Context, author user.User, req inform.CreateInformRequest) (inform.InformResponse, error) {
	if err := req.Validate(); err != nil {
		return inform.InformResponse{}, err
	}

	record := inform.Inform{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: author.ID,
	}
	if slices.Contains(req.DepartmentIDs, publicSentinel) {
		record.Public = true
	} else {
		record.DepartmentIDs = req.DepartmentIDs
	}

	created, err := s.InformRepository.Create(ctx, record)
	if err != nil {
		return inform.InformResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return inform.ToResponse(created), nil
}

// ListVisible implements inform.InformService.
func (s *InformServiceImpl) ListVisible(ctx context.Context, caller user.User) ([]inform.InformResponse, error) {
	records, err := s.InformRepository.ListVisible(ctx, caller.ID, caller.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]inform.InformResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, inform.ToResponse(record))
	}
	return responses, nil
}

// Delete implements inform.InformService. Authorship, not rank: even a
// superuser cannot delete somebody else's announcement.
func (s *InformServiceImpl) Delete(ctx context.Context, caller user.User, informID string) error {
	record, err := s.InformRepository.GetByID(ctx, informID)
	if err != nil {
		return err
	}
	if record.AuthorID != caller.ID {
		return inform.ErrNotAuthor
	}
	return s.InformRepository.Delete(ctx, informID)
}

// MarkRead implements inform.InformService.
func (s *InformServiceImpl) MarkRead(ctx context.Context, caller user.User, informID string) error {
	if _, err := s.InformRepository.GetByID(ctx, informID); err != nil {
		return err
	}
	return s.InformRepository.MarkRead(ctx, informID, caller.ID)
}
