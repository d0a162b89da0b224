package tools

import (
	"fmt"
	"strings"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
)

// Tool names.
const (
	ToolListUsers         = "gw_list_users"
	ToolGetUser           = "gw_get_user"
	ToolCreateUser        = "gw_create_user"
	ToolDeleteUser        = "gw_delete_user"
	ToolSuspendUser       = "gw_suspend_user"
	ToolResetPassword     = "gw_reset_password"
	ToolManageAlias       = "gw_manage_alias"
	ToolListGroups        = "gw_list_groups"
	ToolManageGroupMember = "gw_manage_group_member"
	ToolListOrgUnits      = "gw_list_org_units"
	ToolMoveUserOrg       = "gw_move_user_org"
)

const (
	defaultMaxResults = 100
	maxResultsLimit   = 500

	// Members.list pages hold at most 200 entries.
	maxMembersLimit = 200

	actionAdd    = "add"
	actionRemove = "remove"
	actionList   = "list"
)

type listUsersRequest struct {
	Query         string
	OrgUnitPath   string
	MaxResults    int64
	OrderBy       string
	ShowSuspended bool
	PageToken     string
}

func parseListUsers(raw map[string]interface{}) (*listUsersRequest, error) {
	args, err := newArguments(raw, "query", "orgUnitPath", "maxResults", "orderBy", "showSuspended", "pageToken")
	if err != nil {
		return nil, err
	}
	req := &listUsersRequest{}
	if req.Query, err = args.str("query", false); err != nil {
		return nil, err
	}
	if req.OrgUnitPath, err = orgUnitPath(args, false); err != nil {
		return nil, err
	}
	if req.MaxResults, err = args.integer("maxResults", defaultMaxResults, 1, maxResultsLimit); err != nil {
		return nil, err
	}
	if req.OrderBy, err = args.enum("orderBy", "email", false, "email", "familyName", "givenName"); err != nil {
		return nil, err
	}
	if req.ShowSuspended, err = args.boolean("showSuspended", true); err != nil {
		return nil, err
	}
	if req.PageToken, err = args.str("pageToken", false); err != nil {
		return nil, err
	}
	return req, nil
}

// userQuery folds the org unit and suspension filters into the Admin SDK
// search query so the API does the filtering.
func (r *listUsersRequest) userQuery() models.UserQuery {
	var clauses []string
	if r.Query != "" {
		clauses = append(clauses, r.Query)
	}
	if r.OrgUnitPath != "" {
		clauses = append(clauses, fmt.Sprintf("orgUnitPath='%s'", strings.ReplaceAll(r.OrgUnitPath, "'", `\'`)))
	}
	if !r.ShowSuspended {
		clauses = append(clauses, "isSuspended=false")
	}
	return models.UserQuery{
		Query:      strings.Join(clauses, " "),
		MaxResults: r.MaxResults,
		OrderBy:    r.OrderBy,
		PageToken:  r.PageToken,
	}
}

type userRequest struct {
	Email string
}

func parseGetUser(raw map[string]interface{}) (*userRequest, error) {
	args, err := newArguments(raw, "email")
	if err != nil {
		return nil, err
	}
	email, err := args.directoryKey("email")
	if err != nil {
		return nil, err
	}
	return &userRequest{Email: email}, nil
}

func parseCreateUser(raw map[string]interface{}) (*models.NewUser, error) {
	args, err := newArguments(raw, "email", "firstName", "lastName", "orgUnitPath", "changePasswordAtNextLogin", "recoveryEmail", "recoveryPhone")
	if err != nil {
		return nil, err
	}
	req := &models.NewUser{}
	if req.PrimaryEmail, err = args.email("email", true); err != nil {
		return nil, err
	}
	if req.GivenName, err = args.str("firstName", true); err != nil {
		return nil, err
	}
	if req.FamilyName, err = args.str("lastName", true); err != nil {
		return nil, err
	}
	if req.OrgUnitPath, err = orgUnitPath(args, false); err != nil {
		return nil, err
	}
	if req.OrgUnitPath == "" {
		req.OrgUnitPath = "/"
	}
	if req.ChangePasswordAtNextLogin, err = args.boolean("changePasswordAtNextLogin", true); err != nil {
		return nil, err
	}
	if req.RecoveryEmail, err = args.email("recoveryEmail", false); err != nil {
		return nil, err
	}
	if req.RecoveryPhone, err = args.str("recoveryPhone", false); err != nil {
		return nil, err
	}
	return req, nil
}

type deleteUserRequest struct {
	Email   string
	Confirm bool
}

// parseDeleteUser accepts a missing or non-boolean confirm; the handler turns
// anything but true into a confirmation request.
func parseDeleteUser(raw map[string]interface{}) (*deleteUserRequest, error) {
	args, err := newArguments(raw, "email", "confirm")
	if err != nil {
		return nil, err
	}
	email, err := args.directoryKey("email")
	if err != nil {
		return nil, err
	}
	confirm, _ := args["confirm"].(bool)
	return &deleteUserRequest{Email: email, Confirm: confirm}, nil
}

type suspendUserRequest struct {
	Email     string
	Suspended bool
}

func parseSuspendUser(raw map[string]interface{}) (*suspendUserRequest, error) {
	args, err := newArguments(raw, "email", "suspended")
	if err != nil {
		return nil, err
	}
	req := &suspendUserRequest{}
	if req.Email, err = args.directoryKey("email"); err != nil {
		return nil, err
	}
	if !args.present("suspended") {
		return nil, invalid("suspended", "is required")
	}
	if req.Suspended, err = args.boolean("suspended", false); err != nil {
		return nil, err
	}
	return req, nil
}

type resetPasswordRequest struct {
	Email                     string
	ChangePasswordAtNextLogin bool
}

func parseResetPassword(raw map[string]interface{}) (*resetPasswordRequest, error) {
	args, err := newArguments(raw, "email", "changePasswordAtNextLogin")
	if err != nil {
		return nil, err
	}
	req := &resetPasswordRequest{}
	if req.Email, err = args.directoryKey("email"); err != nil {
		return nil, err
	}
	if req.ChangePasswordAtNextLogin, err = args.boolean("changePasswordAtNextLogin", true); err != nil {
		return nil, err
	}
	return req, nil
}

type manageAliasRequest struct {
	Email  string
	Action string
	Alias  string
}

func parseManageAlias(raw map[string]interface{}) (*manageAliasRequest, error) {
	args, err := newArguments(raw, "email", "action", "alias")
	if err != nil {
		return nil, err
	}
	req := &manageAliasRequest{}
	if req.Email, err = args.directoryKey("email"); err != nil {
		return nil, err
	}
	if req.Action, err = args.enum("action", "", true, actionAdd, actionRemove, actionList); err != nil {
		return nil, err
	}
	if req.Alias, err = args.email("alias", req.Action != actionList); err != nil {
		return nil, err
	}
	return req, nil
}

func parseListGroups(raw map[string]interface{}) (*models.GroupQuery, error) {
	args, err := newArguments(raw, "domain", "memberEmail", "maxResults", "pageToken")
	if err != nil {
		return nil, err
	}
	req := &models.GroupQuery{}
	if req.Domain, err = args.str("domain", false); err != nil {
		return nil, err
	}
	if req.MemberEmail, err = args.email("memberEmail", false); err != nil {
		return nil, err
	}
	if req.Domain != "" && req.MemberEmail != "" {
		return nil, invalid("memberEmail", "domain and memberEmail cannot be combined")
	}
	if req.MaxResults, err = args.integer("maxResults", defaultMaxResults, 1, maxResultsLimit); err != nil {
		return nil, err
	}
	if req.PageToken, err = args.str("pageToken", false); err != nil {
		return nil, err
	}
	return req, nil
}

type manageMemberRequest struct {
	Group      string
	Action     string
	Member     string
	Role       models.MemberRole
	MaxResults int64
	PageToken  string
}

func (r *manageMemberRequest) memberQuery() models.MemberQuery {
	return models.MemberQuery{GroupKey: r.Group, MaxResults: r.MaxResults, PageToken: r.PageToken}
}

func parseManageGroupMember(raw map[string]interface{}) (*manageMemberRequest, error) {
	args, err := newArguments(raw, "group", "action", "member", "role", "maxResults", "pageToken")
	if err != nil {
		return nil, err
	}
	req := &manageMemberRequest{}
	if req.Group, err = args.directoryKey("group"); err != nil {
		return nil, err
	}
	if req.Action, err = args.enum("action", "", true, actionAdd, actionRemove, actionList); err != nil {
		return nil, err
	}
	if req.Member, err = args.email("member", req.Action != actionList); err != nil {
		return nil, err
	}
	role, err := args.enum("role", string(models.RoleMember), true,
		string(models.RoleMember), string(models.RoleManager), string(models.RoleOwner))
	if err != nil {
		return nil, err
	}
	req.Role = models.MemberRole(role)

	if req.Action != actionList {
		for _, key := range []string{"maxResults", "pageToken"} {
			if args.present(key) {
				return nil, invalid(key, "only applies to the %s action", actionList)
			}
		}
		return req, nil
	}
	if req.MaxResults, err = args.integer("maxResults", maxMembersLimit, 1, maxMembersLimit); err != nil {
		return nil, err
	}
	if req.PageToken, err = args.str("pageToken", false); err != nil {
		return nil, err
	}
	return req, nil
}

func parseListOrgUnits(raw map[string]interface{}) error {
	_, err := newArguments(raw)
	return err
}

type moveUserRequest struct {
	Email       string
	OrgUnitPath string
}

func parseMoveUserOrg(raw map[string]interface{}) (*moveUserRequest, error) {
	args, err := newArguments(raw, "email", "orgUnitPath")
	if err != nil {
		return nil, err
	}
	req := &moveUserRequest{}
	if req.Email, err = args.directoryKey("email"); err != nil {
		return nil, err
	}
	if req.OrgUnitPath, err = orgUnitPath(args, true); err != nil {
		return nil, err
	}
	return req, nil
}

func orgUnitPath(args arguments, required bool) (string, error) {
	path, err := args.str("orgUnitPath", required)
	if err != nil || path == "" {
		return path, err
	}
	if !strings.HasPrefix(path, "/") {
		return "", invalid("orgUnitPath", "must start with \"/\", got %q", path)
	}
	return path, nil
}
