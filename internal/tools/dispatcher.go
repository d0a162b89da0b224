package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/interfaces"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/models"
)

// Dispatcher binds the MCP tools to a directory client.
type Dispatcher struct {
	client   interfaces.DirectoryClient
	readOnly bool
}

// NewDispatcher creates a Dispatcher. In read-only mode only the tools that
// never modify the directory are exposed.
func NewDispatcher(client interfaces.DirectoryClient, readOnly bool) *Dispatcher {
	return &Dispatcher{client: client, readOnly: readOnly}
}

// Register adds the tools to the MCP server.
func (d *Dispatcher) Register(s *mcpserver.MCPServer) {
	s.AddTools(d.Tools()...)
}

// Tools returns the tool definitions with their handlers.
func (d *Dispatcher) Tools() []mcpserver.ServerTool {
	tools := []mcpserver.ServerTool{
		{Tool: listUsersTool(), Handler: d.listUsers},
		{Tool: getUserTool(), Handler: d.getUser},
		{Tool: listGroupsTool(), Handler: d.listGroups},
		{Tool: listOrgUnitsTool(), Handler: d.listOrgUnits},
	}
	if d.readOnly {
		return tools
	}
	return append(tools,
		mcpserver.ServerTool{Tool: createUserTool(), Handler: d.createUser},
		mcpserver.ServerTool{Tool: deleteUserTool(), Handler: d.deleteUser},
		mcpserver.ServerTool{Tool: suspendUserTool(), Handler: d.suspendUser},
		mcpserver.ServerTool{Tool: resetPasswordTool(), Handler: d.resetPassword},
		mcpserver.ServerTool{Tool: manageAliasTool(), Handler: d.manageAlias},
		mcpserver.ServerTool{Tool: manageGroupMemberTool(), Handler: d.manageGroupMember},
		mcpserver.ServerTool{Tool: moveUserOrgTool(), Handler: d.moveUserOrg},
	)
}

func readTool(name, title, description string, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

func writeTool(name, title, description string, destructive, idempotent bool, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(destructive),
		mcp.WithIdempotentHintAnnotation(idempotent),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

func listUsersTool() mcp.Tool {
	return readTool(ToolListUsers, "List users",
		"List the users of the Google Workspace domain. Returns one page; pass nextPageToken back as pageToken for the next one.",
		mcp.WithString("query",
			mcp.Description("Admin SDK search query, e.g. 'name:Mario' or 'email:mario@example.com'. Empty for all users."),
		),
		mcp.WithString("orgUnitPath",
			mcp.Description("Only users in this organizational unit, e.g. '/Sales'"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of users to return (1-500)"),
			mcp.Min(1),
			mcp.Max(maxResultsLimit),
			mcp.DefaultNumber(defaultMaxResults),
		),
		mcp.WithString("orderBy",
			mcp.Description("Sort field"),
			mcp.Enum("email", "familyName", "givenName"),
			mcp.DefaultString("email"),
		),
		mcp.WithBoolean("showSuspended",
			mcp.Description("Include suspended users"),
			mcp.DefaultBool(true),
		),
		mcp.WithString("pageToken",
			mcp.Description("Token of the page to return, from a previous nextPageToken"),
		),
	)
}

func getUserTool() mcp.Tool {
	return readTool(ToolGetUser, "Get user",
		"Get the details of a user: name, status, org unit, aliases, last login.",
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Primary email, alias or ID of the user"),
		),
	)
}

func createUserTool() mcp.Tool {
	return writeTool(ToolCreateUser, "Create user",
		"Create a user account. A temporary password is generated and returned once in the result.",
		false, false,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email of the new user")),
		mcp.WithString("firstName", mcp.Required(), mcp.Description("Given name")),
		mcp.WithString("lastName", mcp.Required(), mcp.Description("Family name")),
		mcp.WithString("orgUnitPath",
			mcp.Description("Organizational unit of the new user"),
			mcp.DefaultString("/"),
		),
		mcp.WithBoolean("changePasswordAtNextLogin",
			mcp.Description("Force a password change at the first login"),
			mcp.DefaultBool(true),
		),
		mcp.WithString("recoveryEmail", mcp.Description("Recovery email address")),
		mcp.WithString("recoveryPhone", mcp.Description("Recovery phone in E.164 format, e.g. +393331234567")),
	)
}

func deleteUserTool() mcp.Tool {
	return writeTool(ToolDeleteUser, "Delete user",
		"Delete a user account. Deleted accounts can be restored for 20 days. Requires confirm=true.",
		true, false,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email or ID of the user to delete")),
		mcp.WithBoolean("confirm", mcp.Required(), mcp.Description("Must be true to confirm the deletion")),
	)
}

func suspendUserTool() mcp.Tool {
	return writeTool(ToolSuspendUser, "Suspend or reactivate user",
		"Suspend (suspended=true) or reactivate (suspended=false) a user account.",
		false, true,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email or ID of the user")),
		mcp.WithBoolean("suspended", mcp.Required(), mcp.Description("true to suspend, false to reactivate")),
	)
}

func resetPasswordTool() mcp.Tool {
	return writeTool(ToolResetPassword, "Reset password",
		"Reset the password of a user to a generated temporary password, returned once in the result.",
		false, false,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email or ID of the user")),
		mcp.WithBoolean("changePasswordAtNextLogin",
			mcp.Description("Force a password change at the next login"),
			mcp.DefaultBool(true),
		),
	)
}

func manageAliasTool() mcp.Tool {
	return writeTool(ToolManageAlias, "Manage user aliases",
		"List, add or remove email aliases of a user.",
		false, false,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email or ID of the user")),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Operation to perform"),
			mcp.Enum(actionAdd, actionRemove, actionList),
		),
		mcp.WithString("alias", mcp.Description("Alias email address, required for add and remove")),
	)
}

func listGroupsTool() mcp.Tool {
	return readTool(ToolListGroups, "List groups",
		"List the groups of the customer, of a domain, or the groups a user belongs to. Returns one page.",
		mcp.WithString("domain", mcp.Description("Only groups of this domain")),
		mcp.WithString("memberEmail", mcp.Description("Only groups this user belongs to. Cannot be combined with domain.")),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of groups to return (1-500)"),
			mcp.Min(1),
			mcp.Max(maxResultsLimit),
			mcp.DefaultNumber(defaultMaxResults),
		),
		mcp.WithString("pageToken", mcp.Description("Token of the page to return, from a previous nextPageToken")),
	)
}

func manageGroupMemberTool() mcp.Tool {
	return writeTool(ToolManageGroupMember, "Manage group members",
		"List, add or remove the members of a group.",
		false, false,
		mcp.WithString("group", mcp.Required(), mcp.Description("Email, alias or ID of the group")),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Operation to perform"),
			mcp.Enum(actionAdd, actionRemove, actionList),
		),
		mcp.WithString("member", mcp.Description("Email of the member, required for add and remove")),
		mcp.WithString("role",
			mcp.Description("Role of the new member"),
			mcp.Enum(string(models.RoleMember), string(models.RoleManager), string(models.RoleOwner)),
			mcp.DefaultString(string(models.RoleMember)),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of members to return with the list action (1-200)"),
			mcp.Min(1),
			mcp.Max(maxMembersLimit),
			mcp.DefaultNumber(maxMembersLimit),
		),
		mcp.WithString("pageToken", mcp.Description("Token of the page to return with the list action, from a previous nextPageToken")),
	)
}

func listOrgUnitsTool() mcp.Tool {
	return readTool(ToolListOrgUnits, "List organizational units",
		"List every organizational unit of the domain, sorted by path.",
	)
}

func moveUserOrgTool() mcp.Tool {
	return writeTool(ToolMoveUserOrg, "Move user to org unit",
		"Move a user into another organizational unit.",
		false, true,
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email or ID of the user")),
		mcp.WithString("orgUnitPath", mcp.Required(), mcp.Description("Destination org unit path, e.g. '/Sales'")),
	)
}

func (d *Dispatcher) listUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseListUsers(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	list, err := d.client.ListUsers(ctx, req.userQuery())
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list)
}

func (d *Dispatcher) getUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseGetUser(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	user, err := d.client.GetUser(ctx, req.Email)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(user)
}

func (d *Dispatcher) createUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseCreateUser(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	created, err := d.client.CreateUser(ctx, *req)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(created)
}

func (d *Dispatcher) deleteUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseDeleteUser(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	if !req.Confirm {
		return errorResult(&ConfirmationRequiredError{Tool: ToolDeleteUser, Target: req.Email}), nil
	}
	if err := d.client.DeleteUser(ctx, req.Email); err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"primaryEmail": req.Email,
		"deleted":      true,
	})
}

func (d *Dispatcher) suspendUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseSuspendUser(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	user, err := d.client.SetUserSuspended(ctx, req.Email, req.Suspended)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(user)
}

func (d *Dispatcher) resetPassword(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseResetPassword(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	reset, err := d.client.ResetPassword(ctx, req.Email, req.ChangePasswordAtNextLogin)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(reset)
}

func (d *Dispatcher) manageAlias(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseManageAlias(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	switch req.Action {
	case actionAdd:
		alias, err := d.client.AddAlias(ctx, req.Email, req.Alias)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(alias)
	case actionRemove:
		if err := d.client.RemoveAlias(ctx, req.Email, req.Alias); err != nil {
			return errorResult(err), nil
		}
		return jsonResult(map[string]interface{}{
			"primaryEmail": req.Email,
			"alias":        req.Alias,
			"removed":      true,
		})
	default:
		aliases, err := d.client.ListAliases(ctx, req.Email)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(map[string]interface{}{
			"primaryEmail": req.Email,
			"aliases":      aliases,
		})
	}
}

func (d *Dispatcher) listGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseListGroups(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	list, err := d.client.ListGroups(ctx, *req)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list)
}

func (d *Dispatcher) manageGroupMember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseManageGroupMember(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	switch req.Action {
	case actionAdd:
		member, err := d.client.AddMember(ctx, req.Group, req.Member, req.Role)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(member)
	case actionRemove:
		if err := d.client.RemoveMember(ctx, req.Group, req.Member); err != nil {
			return errorResult(err), nil
		}
		return jsonResult(map[string]interface{}{
			"group":   req.Group,
			"member":  req.Member,
			"removed": true,
		})
	default:
		list, err := d.client.ListMembers(ctx, req.memberQuery())
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(list)
	}
}

func (d *Dispatcher) listOrgUnits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := parseListOrgUnits(request.GetArguments()); err != nil {
		return errorResult(err), nil
	}
	units, err := d.client.ListOrgUnits(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]interface{}{"orgUnits": units})
}

func (d *Dispatcher) moveUserOrg(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseMoveUserOrg(request.GetArguments())
	if err != nil {
		return errorResult(err), nil
	}
	user, err := d.client.MoveUser(ctx, req.Email, req.OrgUnitPath)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(user)
}
