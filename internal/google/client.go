package google

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	admin "google.golang.org/api/admin/directory/v1"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/password"
)

// DefaultCustomerID addresses the customer of the impersonated admin.
const DefaultCustomerID = "my_customer"

// Client implements Google Workspace Directory operations.
type Client struct {
	dir        directory
	customerID string
	passwords  func() (string, error)
}

// NewClient creates a Directory client on top of an authenticated service.
func NewClient(svc *admin.Service, customerID string) (*Client, error) {
	if svc == nil {
		return nil, fmt.Errorf("directory service is required")
	}
	return newClient(&directoryService{svc: svc}, customerID), nil
}

func newClient(dir directory, customerID string) *Client {
	if customerID == "" {
		customerID = DefaultCustomerID
	}
	return &Client{
		dir:        dir,
		customerID: customerID,
		passwords: func() (string, error) {
			return password.Generate(password.DefaultLength)
		},
	}
}

// ListUsers returns a single page of users; the page token is passed through.
func (c *Client) ListUsers(ctx context.Context, query models.UserQuery) (*models.UserList, error) {
	resp, err := c.dir.ListUsers(ctx, c.customerID, query)
	if err != nil {
		return nil, upstreamError("list users", err)
	}
	list := &models.UserList{Users: make([]models.User, 0, len(resp.Users)), NextPageToken: resp.NextPageToken}
	for _, u := range resp.Users {
		list.Users = append(list.Users, toUser(u))
	}
	return list, nil
}

// GetUser returns a single user by primary email, alias or ID.
func (c *Client) GetUser(ctx context.Context, userKey string) (*models.User, error) {
	u, err := c.dir.GetUser(ctx, userKey)
	if err != nil {
		return nil, upstreamError("get user", err)
	}
	user := toUser(u)
	return &user, nil
}

// CreateUser creates an account with a generated temporary password.
func (c *Client) CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error) {
	if user.PrimaryEmail == "" || user.GivenName == "" || user.FamilyName == "" {
		return nil, fmt.Errorf("primary email and name are required")
	}
	pw, err := c.passwords()
	if err != nil {
		return nil, fmt.Errorf("generating password: %w", err)
	}

	orgUnit := user.OrgUnitPath
	if orgUnit == "" {
		orgUnit = "/"
	}
	body := &admin.User{
		PrimaryEmail: user.PrimaryEmail,
		Name: &admin.UserName{
			GivenName:  user.GivenName,
			FamilyName: user.FamilyName,
		},
		Password:                  pw,
		ChangePasswordAtNextLogin: user.ChangePasswordAtNextLogin,
		OrgUnitPath:               orgUnit,
		RecoveryEmail:             user.RecoveryEmail,
		RecoveryPhone:             user.RecoveryPhone,
		ForceSendFields:           []string{"ChangePasswordAtNextLogin"},
	}

	created, err := c.dir.InsertUser(ctx, body)
	if err != nil {
		return nil, upstreamError("create user", err)
	}
	return &models.CreatedUser{User: toUser(created), TemporaryPassword: pw}, nil
}

// DeleteUser deletes an account. Deleted accounts stay restorable for 20 days.
func (c *Client) DeleteUser(ctx context.Context, userKey string) error {
	if err := c.dir.DeleteUser(ctx, userKey); err != nil {
		return upstreamError("delete user", err)
	}
	return nil
}

// SetUserSuspended suspends or reactivates an account.
func (c *Client) SetUserSuspended(ctx context.Context, userKey string, suspended bool) (*models.User, error) {
	updated, err := c.dir.UpdateUser(ctx, userKey, &admin.User{
		Suspended:       suspended,
		ForceSendFields: []string{"Suspended"},
	})
	if err != nil {
		return nil, upstreamError("suspend user", err)
	}
	user := toUser(updated)
	return &user, nil
}

// ResetPassword replaces the password with a generated one.
func (c *Client) ResetPassword(ctx context.Context, userKey string, changeAtNextLogin bool) (*models.PasswordReset, error) {
	pw, err := c.passwords()
	if err != nil {
		return nil, fmt.Errorf("generating password: %w", err)
	}
	updated, err := c.dir.UpdateUser(ctx, userKey, &admin.User{
		Password:                  pw,
		ChangePasswordAtNextLogin: changeAtNextLogin,
		ForceSendFields:           []string{"ChangePasswordAtNextLogin"},
	})
	if err != nil {
		return nil, upstreamError("reset password", err)
	}
	email := userKey
	if updated != nil && updated.PrimaryEmail != "" {
		email = updated.PrimaryEmail
	}
	return &models.PasswordReset{
		PrimaryEmail:              email,
		TemporaryPassword:         pw,
		ChangePasswordAtNextLogin: changeAtNextLogin,
	}, nil
}

// MoveUser moves a user into another organizational unit.
func (c *Client) MoveUser(ctx context.Context, userKey string, orgUnitPath string) (*models.User, error) {
	updated, err := c.dir.UpdateUser(ctx, userKey, &admin.User{OrgUnitPath: orgUnitPath})
	if err != nil {
		return nil, upstreamError("move user", err)
	}
	user := toUser(updated)
	return &user, nil
}

// ListAliases returns the aliases of a user.
func (c *Client) ListAliases(ctx context.Context, userKey string) ([]models.Alias, error) {
	resp, err := c.dir.ListAliases(ctx, userKey)
	if err != nil {
		return nil, upstreamError("list aliases", err)
	}
	aliases := make([]models.Alias, 0, len(resp.Aliases))
	for _, raw := range resp.Aliases {
		// Entries are decoded as generic JSON values.
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding alias: %w", err)
		}
		var alias models.Alias
		if err := json.Unmarshal(data, &alias); err != nil {
			return nil, fmt.Errorf("decoding alias: %w", err)
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// AddAlias adds an alias to a user.
func (c *Client) AddAlias(ctx context.Context, userKey string, alias string) (*models.Alias, error) {
	created, err := c.dir.InsertAlias(ctx, userKey, &admin.Alias{Alias: alias})
	if err != nil {
		return nil, upstreamError("add alias", err)
	}
	result := &models.Alias{Alias: alias, PrimaryEmail: userKey}
	if created != nil {
		if created.Alias != "" {
			result.Alias = created.Alias
		}
		if created.PrimaryEmail != "" {
			result.PrimaryEmail = created.PrimaryEmail
		}
	}
	return result, nil
}

// RemoveAlias removes an alias from a user.
func (c *Client) RemoveAlias(ctx context.Context, userKey string, alias string) error {
	if err := c.dir.DeleteAlias(ctx, userKey, alias); err != nil {
		return upstreamError("remove alias", err)
	}
	return nil
}

// ListGroups returns a single page of groups of a domain, of a member, or of the whole customer.
func (c *Client) ListGroups(ctx context.Context, query models.GroupQuery) (*models.GroupList, error) {
	if query.Domain != "" && query.MemberEmail != "" {
		return nil, fmt.Errorf("domain and member email are mutually exclusive")
	}
	resp, err := c.dir.ListGroups(ctx, c.customerID, query)
	if err != nil {
		return nil, upstreamError("list groups", err)
	}
	list := &models.GroupList{Groups: make([]models.Group, 0, len(resp.Groups)), NextPageToken: resp.NextPageToken}
	for _, g := range resp.Groups {
		if g == nil {
			continue
		}
		list.Groups = append(list.Groups, models.Group{
			ID:                 g.Id,
			Email:              g.Email,
			Name:               g.Name,
			Description:        g.Description,
			DirectMembersCount: g.DirectMembersCount,
		})
	}
	return list, nil
}

// ListMembers returns a single page of the members of a group.
func (c *Client) ListMembers(ctx context.Context, query models.MemberQuery) (*models.MemberList, error) {
	resp, err := c.dir.ListMembers(ctx, query)
	if err != nil {
		return nil, upstreamError("list group members", err)
	}
	list := &models.MemberList{
		Group:         query.GroupKey,
		Members:       make([]models.Member, 0, len(resp.Members)),
		NextPageToken: resp.NextPageToken,
	}
	for _, m := range resp.Members {
		if m == nil {
			continue
		}
		list.Members = append(list.Members, toMember(m))
	}
	return list, nil
}

// AddMember adds a member to a group with the given role.
func (c *Client) AddMember(ctx context.Context, groupKey string, memberEmail string, role models.MemberRole) (*models.Member, error) {
	if role == "" {
		role = models.RoleMember
	}
	created, err := c.dir.InsertMember(ctx, groupKey, &admin.Member{Email: memberEmail, Role: string(role)})
	if err != nil {
		return nil, upstreamError("add group member", err)
	}
	member := toMember(created)
	return &member, nil
}

// RemoveMember removes a member from a group.
func (c *Client) RemoveMember(ctx context.Context, groupKey string, memberKey string) error {
	if err := c.dir.DeleteMember(ctx, groupKey, memberKey); err != nil {
		return upstreamError("remove group member", err)
	}
	return nil
}

// ListOrgUnits returns all organizational units sorted by path.
func (c *Client) ListOrgUnits(ctx context.Context) ([]models.OrgUnit, error) {
	resp, err := c.dir.ListOrgUnits(ctx, c.customerID)
	if err != nil {
		return nil, upstreamError("list org units", err)
	}
	units := make([]models.OrgUnit, 0, len(resp.OrganizationUnits))
	for _, u := range resp.OrganizationUnits {
		if u == nil {
			continue
		}
		units = append(units, models.OrgUnit{
			ID:                u.OrgUnitId,
			Name:              u.Name,
			OrgUnitPath:       u.OrgUnitPath,
			ParentOrgUnitPath: u.ParentOrgUnitPath,
			Description:       u.Description,
		})
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].OrgUnitPath < units[j].OrgUnitPath
	})
	return units, nil
}

func toUser(u *admin.User) models.User {
	if u == nil {
		return models.User{}
	}
	user := models.User{
		ID:            u.Id,
		PrimaryEmail:  u.PrimaryEmail,
		OrgUnitPath:   u.OrgUnitPath,
		Suspended:     u.Suspended,
		IsAdmin:       u.IsAdmin,
		Aliases:       u.Aliases,
		RecoveryEmail: u.RecoveryEmail,
		RecoveryPhone: u.RecoveryPhone,
		CreationTime:  u.CreationTime,
		LastLoginTime: u.LastLoginTime,
	}
	if u.Name != nil {
		user.GivenName = u.Name.GivenName
		user.FamilyName = u.Name.FamilyName
		user.FullName = u.Name.FullName
	}
	return user
}

func toMember(m *admin.Member) models.Member {
	if m == nil {
		return models.Member{}
	}
	return models.Member{
		ID:     m.Id,
		Email:  m.Email,
		Role:   models.MemberRole(m.Role),
		Type:   m.Type,
		Status: m.Status,
	}
}
