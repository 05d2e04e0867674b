package model

import "fmt"

// Role is the fixed set of account roles. A role never changes after the
// account is created.
type Role string

const (
	RoleTeacher  Role = "teacher"
	RoleDirector Role = "director"
	RoleFinance  Role = "finance"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTeacher, RoleDirector, RoleFinance:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// CanRequest reports whether the role may submit expense requests.
// Finance staff can both request and approve.
func (r Role) CanRequest() bool {
	return r == RoleTeacher || r == RoleFinance
}

// CanApprove reports whether the role fills one of the two approval slots.
func (r Role) CanApprove() bool {
	return r == RoleFinance || r == RoleDirector
}

func (r Role) DisplayName() string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	case RoleDirector:
		return "School Director"
	case RoleFinance:
		return "Finance Officer"
	default:
		return string(r)
	}
}
