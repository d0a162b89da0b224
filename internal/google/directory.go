package google

import (
	"context"

	admin "google.golang.org/api/admin/directory/v1"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
)

// directory is the slice of the Admin SDK used by Client, one method per API call.
type directory interface {
	ListUsers(ctx context.Context, customer string, query models.UserQuery) (*admin.Users, error)
	GetUser(ctx context.Context, userKey string) (*admin.User, error)
	InsertUser(ctx context.Context, user *admin.User) (*admin.User, error)
	UpdateUser(ctx context.Context, userKey string, user *admin.User) (*admin.User, error)
	DeleteUser(ctx context.Context, userKey string) error

	ListAliases(ctx context.Context, userKey string) (*admin.Aliases, error)
	InsertAlias(ctx context.Context, userKey string, alias *admin.Alias) (*admin.Alias, error)
	DeleteAlias(ctx context.Context, userKey string, alias string) error

	ListGroups(ctx context.Context, customer string, query models.GroupQuery) (*admin.Groups, error)
	ListMembers(ctx context.Context, query models.MemberQuery) (*admin.Members, error)
	InsertMember(ctx context.Context, groupKey string, member *admin.Member) (*admin.Member, error)
	DeleteMember(ctx context.Context, groupKey string, memberKey string) error

	ListOrgUnits(ctx context.Context, customerID string) (*admin.OrgUnits, error)
}

type directoryService struct {
	svc *admin.Service
}

func (d *directoryService) ListUsers(ctx context.Context, customer string, query models.UserQuery) (*admin.Users, error) {
	call := d.svc.Users.List().Customer(customer)
	if query.Query != "" {
		call = call.Query(query.Query)
	}
	if query.MaxResults > 0 {
		call = call.MaxResults(query.MaxResults)
	}
	if query.OrderBy != "" {
		call = call.OrderBy(query.OrderBy)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}
	return call.Context(ctx).Do()
}

func (d *directoryService) GetUser(ctx context.Context, userKey string) (*admin.User, error) {
	return d.svc.Users.Get(userKey).Context(ctx).Do()
}

func (d *directoryService) InsertUser(ctx context.Context, user *admin.User) (*admin.User, error) {
	return d.svc.Users.Insert(user).Context(ctx).Do()
}

func (d *directoryService) UpdateUser(ctx context.Context, userKey string, user *admin.User) (*admin.User, error) {
	return d.svc.Users.Update(userKey, user).Context(ctx).Do()
}

func (d *directoryService) DeleteUser(ctx context.Context, userKey string) error {
	return d.svc.Users.Delete(userKey).Context(ctx).Do()
}

func (d *directoryService) ListAliases(ctx context.Context, userKey string) (*admin.Aliases, error) {
	return d.svc.Users.Aliases.List(userKey).Context(ctx).Do()
}

func (d *directoryService) InsertAlias(ctx context.Context, userKey string, alias *admin.Alias) (*admin.Alias, error) {
	return d.svc.Users.Aliases.Insert(userKey, alias).Context(ctx).Do()
}

func (d *directoryService) DeleteAlias(ctx context.Context, userKey string, alias string) error {
	return d.svc.Users.Aliases.Delete(userKey, alias).Context(ctx).Do()
}

func (d *directoryService) ListGroups(ctx context.Context, customer string, query models.GroupQuery) (*admin.Groups, error) {
	call := d.svc.Groups.List()
	switch {
	case query.MemberEmail != "":
		call = call.UserKey(query.MemberEmail)
	case query.Domain != "":
		call = call.Domain(query.Domain)
	default:
		call = call.Customer(customer)
	}
	if query.MaxResults > 0 {
		call = call.MaxResults(query.MaxResults)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}
	return call.Context(ctx).Do()
}

func (d *directoryService) ListMembers(ctx context.Context, query models.MemberQuery) (*admin.Members, error) {
	call := d.svc.Members.List(query.GroupKey)
	if query.MaxResults > 0 {
		call = call.MaxResults(query.MaxResults)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}
	return call.Context(ctx).Do()
}

func (d *directoryService) InsertMember(ctx context.Context, groupKey string, member *admin.Member) (*admin.Member, error) {
	return d.svc.Members.Insert(groupKey, member).Context(ctx).Do()
}

func (d *directoryService) DeleteMember(ctx context.Context, groupKey string, memberKey string) error {
	return d.svc.Members.Delete(groupKey, memberKey).Context(ctx).Do()
}

func (d *directoryService) ListOrgUnits(ctx context.Context, customerID string) (*admin.OrgUnits, error) {
	return d.svc.Orgunits.List(customerID).Type("all").Context(ctx).Do()
}
