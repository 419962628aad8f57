package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/staff"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]user.User, error) {
	var out []user.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByDepartment(_ context.Context, departmentID string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.DepartmentID != nil && *u.DepartmentID == departmentID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id string, status user.Status) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Status = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	return nil
}

type fakeDeptRepo struct {
	departments map[string]department.Department
}

func (f *fakeDeptRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	f.departments[d.ID] = d
	return d, nil
}

func (f *fakeDeptRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (f *fakeDeptRepo) GetByLeaderID(_ context.Context, leaderID string) (department.Department, error) {
	for _, d := range f.departments {
		if d.LeaderID != nil && *d.LeaderID == leaderID {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDeptRepo) List(_ context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDeptRepo) UpdateLeader(_ context.Context, id string, leaderID string) error {
	d, ok := f.departments[id]
	if !ok {
		return department.ErrDepartmentNotFound
	}
	d.LeaderID = &leaderID
	f.departments[id] = d
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Enqueue(to, subject, body string) {
	f.sent = append(f.sent, to)
}

func (f *fakeMailer) Close() {}

type staffFixture struct {
	service  staff.StaffService
	users    *fakeUserRepo
	jwt      jwt.Service
	mailer   *fakeMailer
	leader   user.User
	manager  user.User
	member   user.User
	outsider user.User
}

func newStaffFixture() *staffFixture {
	engID := "dept-eng"
	salesID := "dept-sales"
	leaderID := "leader-1"
	managerID := "manager-1"
	salesLeadID := "saleslead-1"

	fx := &staffFixture{
		jwt:      jwt.NewJWTService("test-secret-key-for-jwt"),
		mailer:   &fakeMailer{},
		leader:   user.User{ID: leaderID, Username: "lead", Email: "lead@corp.test", Status: user.StatusActive, DepartmentID: &engID},
		manager:  user.User{ID: managerID, Username: "mgr", Email: "mgr@corp.test", Status: user.StatusActive},
		member:   user.User{ID: "member-1", Username: "member", Email: "member@corp.test", Status: user.StatusActive, DepartmentID: &engID},
		outsider: user.User{ID: "sales-1", Username: "seller", Email: "seller@corp.test", Status: user.StatusActive, DepartmentID: &salesID},
	}

	fx.users = &fakeUserRepo{users: map[string]user.User{
		fx.leader.ID:   fx.leader,
		fx.manager.ID:  fx.manager,
		fx.member.ID:   fx.member,
		fx.outsider.ID: fx.outsider,
	}}
	deptRepo := &fakeDeptRepo{departments: map[string]department.Department{
		engID:   {ID: engID, Name: "Engineering", LeaderID: &leaderID, ManagerID: &managerID},
		salesID: {ID: salesID, Name: "Sales", LeaderID: &salesLeadID},
	}}

	fx.service = NewStaffService(fx.users, deptRepo, fx.jwt, fx.mailer, "http://localhost:3000")
	return fx
}

func validAddRequest() staff.AddStaffRequest {
	return staff.AddStaffRequest{
		Username: "carol",
		Email:    "carol@corp.test",
		Password: "password123",
	}
}

func TestAddStaffByLeader(t *testing.T) {
	fx := newStaffFixture()

	created, err := fx.service.Add(context.Background(), fx.leader, validAddRequest())
	require.NoError(t, err)

	assert.Equal(t, user.StatusDisabled, created.Status)
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, *fx.leader.DepartmentID, *created.DepartmentID)
	assert.Equal(t, []string{"carol@corp.test"}, fx.mailer.sent)
}

func TestAddStaffRequiresLeaderOrSuperuser(t *testing.T) {
	fx := newStaffFixture()

	_, err := fx.service.Add(context.Background(), fx.member, validAddRequest())
	assert.ErrorIs(t, err, staff.ErrOnboardPermission)

	root := user.User{ID: "root-1", Superuser: true, Status: user.StatusActive}
	_, err = fx.service.Add(context.Background(), root, validAddRequest())
	assert.NoError(t, err)
}

func TestActivateFlipsDisabledToActive(t *testing.T) {
	fx := newStaffFixture()
	ctx := context.Background()

	created, err := fx.service.Add(ctx, fx.leader, validAddRequest())
	require.NoError(t, err)

	token, err := fx.jwt.GenerateActivationToken(created.ID)
	require.NoError(t, err)

	activated, err := fx.service.Activate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, activated.Status)

	// a second use of the link conflicts
	_, err = fx.service.Activate(ctx, token)
	assert.ErrorIs(t, err, staff.ErrAlreadyActive)
}

func TestActivateRejectsBadToken(t *testing.T) {
	fx := newStaffFixture()
	ctx := context.Background()

	_, err := fx.service.Activate(ctx, "garbage")
	assert.ErrorIs(t, err, staff.ErrActivationInvalid)

	// an access token is not an activation token
	access, _, err := fx.jwt.GenerateToken(fx.member)
	require.NoError(t, err)
	_, err = fx.service.Activate(ctx, access)
	assert.ErrorIs(t, err, staff.ErrActivationInvalid)
}

func TestActivateLockedAccount(t *testing.T) {
	fx := newStaffFixture()
	ctx := context.Background()

	created, err := fx.service.Add(ctx, fx.leader, validAddRequest())
	require.NoError(t, err)
	require.NoError(t, fx.users.UpdateStatus(ctx, created.ID, user.StatusLocked))

	token, err := fx.jwt.GenerateActivationToken(created.ID)
	require.NoError(t, err)

	_, err = fx.service.Activate(ctx, token)
	assert.ErrorIs(t, err, staff.ErrAccountLocked)
}

func TestListGroupsByDepartment(t *testing.T) {
	fx := newStaffFixture()
	root := user.User{ID: "root-1", Superuser: true, Status: user.StatusActive}

	fx.users.users[fx.leader.ID] = withDeptName(fx.leader, "Engineering")
	fx.users.users[fx.member.ID] = withDeptName(fx.member, "Engineering")
	fx.users.users[fx.outsider.ID] = withDeptName(fx.outsider, "Sales")

	listing, err := fx.service.List(context.Background(), root)
	require.NoError(t, err)

	eng := listing["Engineering"]
	require.Len(t, eng.Leader, 1)
	assert.Equal(t, fx.leader.ID, eng.Leader[0].ID)
	require.Len(t, eng.Members, 1)
	assert.Equal(t, fx.member.ID, eng.Members[0].ID)

	assert.Len(t, listing["Sales"].Members, 1)

	// the manager has no department row, they land in the unassigned bucket
	assert.Len(t, listing["unassigned"].Members, 1)
}

func TestListScopedToOwnDepartment(t *testing.T) {
	fx := newStaffFixture()

	fx.users.users[fx.leader.ID] = withDeptName(fx.leader, "Engineering")
	fx.users.users[fx.member.ID] = withDeptName(fx.member, "Engineering")
	fx.users.users[fx.outsider.ID] = withDeptName(fx.outsider, "Sales")

	listing, err := fx.service.List(context.Background(), fx.member)
	require.NoError(t, err)

	assert.Contains(t, listing, "Engineering")
	assert.NotContains(t, listing, "Sales")
}

func TestDownloadPermissions(t *testing.T) {
	fx := newStaffFixture()
	ctx := context.Background()

	// leader exports own-department staff
	workbook, err := fx.service.Download(ctx, fx.leader, []string{fx.member.ID})
	require.NoError(t, err)
	assert.NotNil(t, workbook)

	// foreign rows are filtered; nothing left means forbidden
	_, err = fx.service.Download(ctx, fx.leader, []string{fx.outsider.ID})
	assert.ErrorIs(t, err, staff.ErrDownloadPermission)

	// an ordinary member cannot export at all
	_, err = fx.service.Download(ctx, fx.member, []string{fx.member.ID})
	assert.ErrorIs(t, err, staff.ErrDownloadPermission)

	// a superuser exports anyone
	root := user.User{ID: "root-1", Superuser: true}
	workbook, err = fx.service.Download(ctx, root, []string{fx.member.ID, fx.outsider.ID})
	require.NoError(t, err)
	assert.NotNil(t, workbook)

	_, err = fx.service.Download(ctx, root, nil)
	assert.ErrorIs(t, err, staff.ErrNoStaffSelected)
}

func TestUpdateDepartmentLeader(t *testing.T) {
	fx := newStaffFixture()
	ctx := context.Background()

	// the department's manager may promote a member to leader
	err := fx.service.UpdateDepartmentLeader(ctx, fx.manager, "dept-eng", fx.member.ID)
	require.NoError(t, err)

	// a random member may not
	err = fx.service.UpdateDepartmentLeader(ctx, fx.outsider, "dept-eng", fx.member.ID)
	assert.ErrorIs(t, err, user.ErrPermissionDenied)

	// the new leader must belong to the department
	root := user.User{ID: "root-1", Superuser: true}
	err = fx.service.UpdateDepartmentLeader(ctx, root, "dept-eng", fx.outsider.ID)
	assert.ErrorIs(t, err, department.ErrLeaderNotInDept)
}

func withDeptName(u user.User, name string) user.User {
	u.DepartmentName = &name
	return u
}
