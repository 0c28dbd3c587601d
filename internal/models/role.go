package models

// Role is the privilege level of a user. The five values form a total
// order; comparisons go through RoleWeight, not enum identity.
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleOsztalyVezeto Role = "OsztalyVezeto"
	RoleCsoportVezeto Role = "CsoportVezeto"
	RoleMunkatars     Role = "Munkatars"
	RoleMegtekinto    Role = "Megtekinto"
)

// AllRoles lists every role in descending privilege order.
var AllRoles = []Role{
	RoleAdmin,
	RoleOsztalyVezeto,
	RoleCsoportVezeto,
	RoleMunkatars,
	RoleMegtekinto,
}

var roleWeights = map[Role]int{
	RoleAdmin:         5,
	RoleOsztalyVezeto: 4,
	RoleCsoportVezeto: 3,
	RoleMunkatars:     2,
	RoleMegtekinto:    1,
}

// RoleWeight returns the numeric weight of a role, 1..5 ascending with
// privilege. Unknown roles weigh 0 and therefore pass no check.
func RoleWeight(r Role) int {
	return roleWeights[r]
}

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	_, ok := roleWeights[r]
	return ok
}
