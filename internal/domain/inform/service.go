package inform

import (
	"context"

	"github.com/oa-project/office-backend-go/internal/domain/user"
)

type InformService interface {
	Create(ctx context.Context, author user.User, req CreateInformRequest) (InformResponse, error)
	ListVisible(ctx context.Context, caller user.User) ([]InformResponse, error)
	Delete(ctx context.Context, caller user.User, informID string) error
	MarkRead(ctx context.Context, caller user.User, informID string) error
}
