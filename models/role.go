package models

// Role selects which namespace prefix applies when a path is turned into a class name.
type Role string

const (
	RoleController Role = "controller"
	RoleModel      Role = "model"
	RoleView       Role = "view"
)

// Roles lists every known role in a stable order.
var Roles = []Role{RoleController, RoleModel, RoleView}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleController, RoleModel, RoleView:
		return true
	}
	return false
}

// ParseRole converts user input (route params, CLI args) into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
