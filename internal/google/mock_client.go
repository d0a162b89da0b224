package google

import (
	"context"
	"sync"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
)

// MockClient is a simple mock implementation of the Directory client.
// Unset functions return empty results.
type MockClient struct {
	ListUsersFunc        func(ctx context.Context, query models.UserQuery) (*models.UserList, error)
	GetUserFunc          func(ctx context.Context, userKey string) (*models.User, error)
	CreateUserFunc       func(ctx context.Context, user models.NewUser) (*models.CreatedUser, error)
	DeleteUserFunc       func(ctx context.Context, userKey string) error
	SetUserSuspendedFunc func(ctx context.Context, userKey string, suspended bool) (*models.User, error)
	ResetPasswordFunc    func(ctx context.Context, userKey string, changeAtNextLogin bool) (*models.PasswordReset, error)
	MoveUserFunc         func(ctx context.Context, userKey string, orgUnitPath string) (*models.User, error)
	ListAliasesFunc      func(ctx context.Context, userKey string) ([]models.Alias, error)
	AddAliasFunc         func(ctx context.Context, userKey string, alias string) (*models.Alias, error)
	RemoveAliasFunc      func(ctx context.Context, userKey string, alias string) error
	ListGroupsFunc       func(ctx context.Context, query models.GroupQuery) (*models.GroupList, error)
	ListMembersFunc      func(ctx context.Context, query models.MemberQuery) (*models.MemberList, error)
	AddMemberFunc        func(ctx context.Context, groupKey string, memberEmail string, role models.MemberRole) (*models.Member, error)
	RemoveMemberFunc     func(ctx context.Context, groupKey string, memberKey string) error
	ListOrgUnitsFunc     func(ctx context.Context) ([]models.OrgUnit, error)

	// Calls counts every invocation, keyed by method name. Read it through
	// CallCount while calls may still be in flight.
	Calls map[string]int

	mu sync.Mutex
}

func (m *MockClient) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = map[string]int{}
	}
	m.Calls[method]++
}

// CallCount returns the number of calls made to method.
func (m *MockClient) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (m *MockClient) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.Calls {
		total += n
	}
	return total
}

func (m *MockClient) ListUsers(ctx context.Context, query models.UserQuery) (*models.UserList, error) {
	m.record("ListUsers")
	if m.ListUsersFunc == nil {
		return &models.UserList{}, nil
	}
	return m.ListUsersFunc(ctx, query)
}

func (m *MockClient) GetUser(ctx context.Context, userKey string) (*models.User, error) {
	m.record("GetUser")
	if m.GetUserFunc == nil {
		return &models.User{PrimaryEmail: userKey}, nil
	}
	return m.GetUserFunc(ctx, userKey)
}

func (m *MockClient) CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error) {
	m.record("CreateUser")
	if m.CreateUserFunc == nil {
		return &models.CreatedUser{User: models.User{PrimaryEmail: user.PrimaryEmail, OrgUnitPath: user.OrgUnitPath}}, nil
	}
	return m.CreateUserFunc(ctx, user)
}

func (m *MockClient) DeleteUser(ctx context.Context, userKey string) error {
	m.record("DeleteUser")
	if m.DeleteUserFunc == nil {
		return nil
	}
	return m.DeleteUserFunc(ctx, userKey)
}

func (m *MockClient) SetUserSuspended(ctx context.Context, userKey string, suspended bool) (*models.User, error) {
	m.record("SetUserSuspended")
	if m.SetUserSuspendedFunc == nil {
		return &models.User{PrimaryEmail: userKey, Suspended: suspended}, nil
	}
	return m.SetUserSuspendedFunc(ctx, userKey, suspended)
}

func (m *MockClient) ResetPassword(ctx context.Context, userKey string, changeAtNextLogin bool) (*models.PasswordReset, error) {
	m.record("ResetPassword")
	if m.ResetPasswordFunc == nil {
		return &models.PasswordReset{PrimaryEmail: userKey, ChangePasswordAtNextLogin: changeAtNextLogin}, nil
	}
	return m.ResetPasswordFunc(ctx, userKey, changeAtNextLogin)
}

func (m *MockClient) MoveUser(ctx context.Context, userKey string, orgUnitPath string) (*models.User, error) {
	m.record("MoveUser")
	if m.MoveUserFunc == nil {
		return &models.User{PrimaryEmail: userKey, OrgUnitPath: orgUnitPath}, nil
	}
	return m.MoveUserFunc(ctx, userKey, orgUnitPath)
}

func (m *MockClient) ListAliases(ctx context.Context, userKey string) ([]models.Alias, error) {
	m.record("ListAliases")
	if m.ListAliasesFunc == nil {
		return nil, nil
	}
	return m.ListAliasesFunc(ctx, userKey)
}

func (m *MockClient) AddAlias(ctx context.Context, userKey string, alias string) (*models.Alias, error) {
	m.record("AddAlias")
	if m.AddAliasFunc == nil {
		return &models.Alias{Alias: alias, PrimaryEmail: userKey}, nil
	}
	return m.AddAliasFunc(ctx, userKey, alias)
}

func (m *MockClient) RemoveAlias(ctx context.Context, userKey string, alias string) error {
	m.record("RemoveAlias")
	if m.RemoveAliasFunc == nil {
		return nil
	}
	return m.RemoveAliasFunc(ctx, userKey, alias)
}

func (m *MockClient) ListGroups(ctx context.Context, query models.GroupQuery) (*models.GroupList, error) {
	m.record("ListGroups")
	if m.ListGroupsFunc == nil {
		return &models.GroupList{}, nil
	}
	return m.ListGroupsFunc(ctx, query)
}

func (m *MockClient) ListMembers(ctx context.Context, query models.MemberQuery) (*models.MemberList, error) {
	m.record("ListMembers")
	if m.ListMembersFunc == nil {
		return &models.MemberList{Group: query.GroupKey}, nil
	}
	return m.ListMembersFunc(ctx, query)
}

func (m *MockClient) AddMember(ctx context.Context, groupKey string, memberEmail string, role models.MemberRole) (*models.Member, error) {
	m.record("AddMember")
	if m.AddMemberFunc == nil {
		return &models.Member{Email: memberEmail, Role: role}, nil
	}
	return m.AddMemberFunc(ctx, groupKey, memberEmail, role)
}

func (m *MockClient) RemoveMember(ctx context.Context, groupKey string, memberKey string) error {
	m.record("RemoveMember")
	if m.RemoveMemberFunc == nil {
		return nil
	}
	return m.RemoveMemberFunc(ctx, groupKey, memberKey)
}

func (m *MockClient) ListOrgUnits(ctx context.Context) ([]models.OrgUnit, error) {
	m.record("ListOrgUnits")
	if m.ListOrgUnitsFunc == nil {
		return nil, nil
	}
	return m.ListOrgUnitsFunc(ctx)
}
