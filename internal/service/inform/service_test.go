package inform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oa-project/office-backend-go/internal/domain/inform"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

type fakeInformRepo struct {
	records map[string]inform.Inform
	reads   map[string]map[string]bool
}

func newFakeInformRepo() *fakeInformRepo {
	return &fakeInformRepo{
		records: make(map[string]inform.Inform),
		reads:   make(map[string]map[string]bool),
	}
}

func (f *fakeInformRepo) Create(_ context.Context, i inform.Inform) (inform.Inform, error) {
	f.records[i.ID] = i
	return i, nil
}

func (f *fakeInformRepo) GetByID(_ context.Context, id string) (inform.Inform, error) {
	i, ok := f.records[id]
	if !ok {
		return inform.Inform{}, inform.ErrInformNotFound
	}
	return i, nil
}

func (f *fakeInformRepo) ListVisible(_ context.Context, userID string, departmentID *string) ([]inform.Inform, error) {
	var out []inform.Inform
	for _, i := range f.records {
		visible := i.Public || i.AuthorID == userID
		if !visible && departmentID != nil {
			for _, d := range i.DepartmentIDs {
				if d == *departmentID {
					visible = true
					break
				}
			}
		}
		if visible {
			i.ReadByMe = f.reads[i.ID][userID]
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInformRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeInformRepo) MarkRead(_ context.Context, informID, userID string) error {
	if f.reads[informID] == nil {
		f.reads[informID] = make(map[string]bool)
	}
	f.reads[informID][userID] = true
	return nil
}

func TestCreatePublicSentinel(t *testing.T) {
	svc := NewInformService(newFakeInformRepo())
	author := user.User{ID: "author-1"}

	created, err := svc.Create(context.Background(), author, inform.CreateInformRequest{
		Title:         "All hands",
		Content:       "Friday 4pm",
		DepartmentIDs: []string{"0"},
	})
	require.NoError(t, err)

	assert.True(t, created.Public)
	assert.Empty(t, created.DepartmentIDs)
}

func TestCreateDepartmentScoped(t *testing.T) {
	svc := NewInformService(newFakeInformRepo())
	author := user.User{ID: "author-1"}

	created, err := svc.Create(context.Background(), author, inform.CreateInformRequest{
		Title:         "Sprint review",
		Content:       "Demo time",
		DepartmentIDs: []string{"dept-eng"},
	})
	require.NoError(t, err)

	assert.False(t, created.Public)
	assert.Equal(t, []string{"dept-eng"}, created.DepartmentIDs)
}

func TestListVisibleScoping(t *testing.T) {
	repo := newFakeInformRepo()
	svc := NewInformService(repo)
	ctx := context.Background()
	author := user.User{ID: "author-1"}

	_, err := svc.Create(ctx, author, inform.CreateInformRequest{
		Title: "Public", Content: "x", DepartmentIDs: []string{"0"},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author, inform.CreateInformRequest{
		Title: "Eng only", Content: "x", DepartmentIDs: []string{"dept-eng"},
	})
	require.NoError(t, err)

	engID := "dept-eng"
	salesID := "dept-sales"

	engineer := user.User{ID: "eng-1", DepartmentID: &engID}
	visible, err := svc.ListVisible(ctx, engineer)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	seller := user.User{ID: "sales-1", DepartmentID: &salesID}
	visible, err = svc.ListVisible(ctx, seller)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public", visible[0].Title)

	// the author always sees their own announcements
	visible, err = svc.ListVisible(ctx, author)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestDeleteAuthorOnly(t *testing.T) {
	repo := newFakeInformRepo()
	svc := NewInformService(repo)
	ctx := context.Background()
	author := user.User{ID: "author-1"}

	created, err := svc.Create(ctx, author, inform.CreateInformRequest{
		Title: "Oops", Content: "x", DepartmentIDs: []string{"0"},
	})
	require.NoError(t, err)

	root := user.User{ID: "root-1", Superuser: true}
	err = svc.Delete(ctx, root, created.ID)
	assert.ErrorIs(t, err, inform.ErrNotAuthor)

	require.NoError(t, svc.Delete(ctx, author, created.ID))

	err = svc.Delete(ctx, author, created.ID)
	assert.ErrorIs(t, err, inform.ErrInformNotFound)
}

func TestMarkRead(t *testing.T) {
	repo := newFakeInformRepo()
	svc := NewInformService(repo)
	ctx := context.Background()
	author := user.User{ID: "author-1"}
	reader := user.User{ID: "reader-1"}

	created, err := svc.Create(ctx, author, inform.CreateInformRequest{
		Title: "Read me", Content: "x", DepartmentIDs: []string{"0"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, reader, created.ID))
	// idempotent
	require.NoError(t, svc.MarkRead(ctx, reader, created.ID))

	visible, err := svc.ListVisible(ctx, reader)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.True(t, visible[0].ReadByMe)

	err = svc.MarkRead(ctx, reader, "missing-id")
	assert.ErrorIs(t, err, inform.ErrInformNotFound)
}
