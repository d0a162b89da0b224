package models

// User is a Google Workspace account as returned by the Directory API.
type User struct {
	ID            string   `json:"id,omitempty"`
	PrimaryEmail  string   `json:"primaryEmail"`
	GivenName     string   `json:"givenName,omitempty"`
	FamilyName    string   `json:"familyName,omitempty"`
	FullName      string   `json:"fullName,omitempty"`
	OrgUnitPath   string   `json:"orgUnitPath,omitempty"`
	Suspended     bool     `json:"suspended"`
	IsAdmin       bool     `json:"isAdmin"`
	Aliases       []string `json:"aliases,omitempty"`
	RecoveryEmail string   `json:"recoveryEmail,omitempty"`
	RecoveryPhone string   `json:"recoveryPhone,omitempty"`
	CreationTime  string   `json:"creationTime,omitempty"`
	LastLoginTime string   `json:"lastLoginTime,omitempty"`
}

// UserList is one page of users.
type UserList struct {
	Users         []User `json:"users"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// UserQuery selects a page of users in the configured customer.
type UserQuery struct {
	Query      string
	MaxResults int64
	OrderBy    string
	PageToken  string
}

// NewUser holds the profile of an account to create. The password is never
// part of it: the directory client always generates one.
type NewUser struct {
	PrimaryEmail              string
	GivenName                 string
	FamilyName                string
	OrgUnitPath               string
	ChangePasswordAtNextLogin bool
	RecoveryEmail             string
	RecoveryPhone             string
}

// CreatedUser is the result of a user creation, including the temporary password.
type CreatedUser struct {
	User              User   `json:"user"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// PasswordReset is the result of a password reset.
type PasswordReset struct {
	PrimaryEmail              string `json:"primaryEmail"`
	TemporaryPassword         string `json:"temporaryPassword"`
	ChangePasswordAtNextLogin bool   `json:"changePasswordAtNextLogin"`
}

// Alias is a secondary address routed to a user's mailbox.
type Alias struct {
	Alias        string `json:"alias"`
	PrimaryEmail string `json:"primaryEmail,omitempty"`
}

// Group is a Google Group.
type Group struct {
	ID                 string `json:"id,omitempty"`
	Email              string `json:"email"`
	Name               string `json:"name,omitempty"`
	Description        string `json:"description,omitempty"`
	DirectMembersCount int64  `json:"directMembersCount"`
}

// GroupList is one page of groups.
type GroupList struct {
	Groups        []Group `json:"groups"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// GroupQuery selects groups by domain, by member, or across the customer when both are empty.
type GroupQuery struct {
	Domain      string
	MemberEmail string
	MaxResults  int64
	PageToken   string
}

// MemberRole is the role of a member inside a group.
type MemberRole string

const (
	RoleMember  MemberRole = "MEMBER"
	RoleManager MemberRole = "MANAGER"
	RoleOwner   MemberRole = "OWNER"
)

// Member is a member of a Google Group.
type Member struct {
	ID     string     `json:"id,omitempty"`
	Email  string     `json:"email"`
	Role   MemberRole `json:"role"`
	Type   string     `json:"type,omitempty"`
	Status string     `json:"status,omitempty"`
}

// MemberList is one page of the members of a group.
type MemberList struct {
	Group         string   `json:"group"`
	Members       []Member `json:"members"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// MemberQuery selects a page of the members of a group.
type MemberQuery struct {
	GroupKey   string
	MaxResults int64
	PageToken  string
}

// OrgUnit is an organizational unit in the customer's tree.
type OrgUnit struct {
	ID                string `json:"orgUnitId,omitempty"`
	Name              string `json:"name"`
	OrgUnitPath       string `json:"orgUnitPath"`
	ParentOrgUnitPath string `json:"parentOrgUnitPath,omitempty"`
	Description       string `json:"description,omitempty"`
}
