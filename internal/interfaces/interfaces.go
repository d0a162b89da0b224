package interfaces

import (
	"context"
	"time"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
)

// DirectoryClient defines the Google Workspace Directory operations exposed as tools.
// Every method maps to exactly one Admin SDK call.
type DirectoryClient interface {
	ListUsers(ctx context.Context, query models.UserQuery) (*models.UserList, error)
	GetUser(ctx context.Context, userKey string) (*models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error)
	DeleteUser(ctx context.Context, userKey string) error
	SetUserSuspended(ctx context.Context, userKey string, suspended bool) (*models.User, error)
	ResetPassword(ctx context.Context, userKey string, changeAtNextLogin bool) (*models.PasswordReset, error)
	MoveUser(ctx context.Context, userKey string, orgUnitPath string) (*models.User, error)

	ListAliases(ctx context.Context, userKey string) ([]models.Alias, error)
	AddAlias(ctx context.Context, userKey string, alias string) (*models.Alias, error)
	RemoveAlias(ctx context.Context, userKey string, alias string) error

	ListGroups(ctx context.Context, query models.GroupQuery) (*models.GroupList, error)
	ListMembers(ctx context.Context, query models.MemberQuery) (*models.MemberList, error)
	AddMember(ctx context.Context, groupKey string, memberEmail string, role models.MemberRole) (*models.Member, error)
	RemoveMember(ctx context.Context, groupKey string, memberKey string) error

	ListOrgUnits(ctx context.Context) ([]models.OrgUnit, error)
}

// ToolRecorder records the outcome of a single tool invocation.
type ToolRecorder interface {
	RecordToolCall(ctx context.Context, tool string, status string, duration time.Duration)
}
