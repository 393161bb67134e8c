package models

// UserRole controls what an operator account may do.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleCollector UserRole = "collector"
	RoleViewer    UserRole = "viewer"
	RoleMember    UserRole = "member"
)

// User is an operator account. Member self-service logins link to a Member
// record through MemberID.
type User struct {
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Username string   `json:"username"`

	// PasswordHash is a bcrypt hash of the account password.
	PasswordHash string `json:"passwordHash"`

	IsActive bool `json:"isActive"`

	// MemberID links member-role accounts to their member record.
	MemberID string `json:"memberId,omitempty"`
}
