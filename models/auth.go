package models

// Role is the dashboard persona a user is acting as
type Role string

// Role values
const (
	RoleCitizen      Role = "CITIZEN"
	RoleTalukOfficer Role = "TALUK_OFFICER"
	RoleCollector    Role = "COLLECTOR"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleCitizen || r == RoleTalukOfficer || r == RoleCollector
}

// LoginRequest holds the body of a demo role login
type LoginRequest struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// LoginResponse returns the signed role token
type LoginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}
