package constants

import "github.com/somchaipk/schoolfin/internal/model"

// DefaultPassword is the seed password for the first-run accounts. Users
// are expected to change it.
const DefaultPassword = "pass1234"

type SeedUser struct {
	Username string
	Name     string
	Role     model.Role
}

// SeedUsers are created when the users table is empty so a fresh install
// has one account per role.
var SeedUsers = []SeedUser{
	{Username: "teacher", Name: "Teacher 01", Role: model.RoleTeacher},
	{Username: "director", Name: "School Director", Role: model.RoleDirector},
	{Username: "finance", Name: "Finance Officer", Role: model.RoleFinance},
}
