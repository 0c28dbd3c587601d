// Package permissions is the role-based access-control engine: pure,
// deterministic predicates over roles and ownership context. It has no
// store dependency; callers consult it before every privileged
// repository call, and the repositories themselves enforce nothing.
package permissions

import (
	"github.com/takacsd/tms/internal/models"
)

// CanCreateUser reports whether a role may create users.
func CanCreateUser(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanEditUser reports whether a role may edit users at all; pair with
// CanEditTargetUser for the per-target decision.
func CanEditUser(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanDeleteUser reports whether a role may delete users.
func CanDeleteUser(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageCompetencies reports whether a role may manage the
// competency catalog.
func CanManageCompetencies(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageMasterData reports whether a role may manage the shared
// reference collections (project tags, task types, priorities,
// statuses).
func CanManageMasterData(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanCreateRole reports whether a role may create a user holding the
// target role. Membership predicate over the CreatableRoles sets.
func CanCreateRole(role, target models.Role) bool {
	for _, r := range CreatableRoles(role) {
		if r == target {
			return true
		}
	}
	return false
}

// CreatableRoles returns the roles a role is allowed to assign to new
// users.
func CreatableRoles(role models.Role) []models.Role {
	switch role {
	case models.RoleAdmin:
		return []models.Role{
			models.RoleAdmin,
			models.RoleOsztalyVezeto,
			models.RoleCsoportVezeto,
			models.RoleMunkatars,
			models.RoleMegtekinto,
		}
	case models.RoleOsztalyVezeto:
		return []models.Role{
			models.RoleCsoportVezeto,
			models.RoleMunkatars,
			models.RoleMegtekinto,
		}
	case models.RoleCsoportVezeto:
		return []models.Role{
			models.RoleMunkatars,
			models.RoleMegtekinto,
		}
	default:
		return nil
	}
}

// CanEditTargetUser reports whether the acting role may edit a user
// holding the target role. Admin edits everyone, itself included;
// everyone else needs strictly higher weight, so peers and superiors
// are off limits.
func CanEditTargetUser(actingRole, targetRole models.Role) bool {
	if actingRole == models.RoleAdmin {
		return true
	}
	return models.RoleWeight(actingRole) > models.RoleWeight(targetRole)
}

// CanCreateProject reports whether a role may create projects.
func CanCreateProject(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanEditProject reports whether a role may edit projects.
func CanEditProject(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanManageProjectTeam reports whether a role may change a project's
// team composition.
func CanManageProjectTeam(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanDeleteProject reports whether a role may delete projects.
func CanDeleteProject(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanCreateTask reports whether a role may create tasks.
func CanCreateTask(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanEditTask reports whether a role may fully edit tasks.
func CanEditTask(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanDeleteTask reports whether a role may delete tasks.
func CanDeleteTask(role models.Role) bool {
	return models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto)
}

// CanEditTaskProgress reports whether the acting user may edit a
// task's progress fields (status, actual hours). Full editors always
// may; a Munkatars may only on tasks they are assigned to. The
// exception is Munkatars-specific: an assigned Megtekinto gets
// nothing.
func CanEditTaskProgress(role models.Role, assigneeUserIDs []string, actingUserID string) bool {
	if models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto) {
		return true
	}
	if role != models.RoleMunkatars {
		return false
	}
	for _, id := range assigneeUserIDs {
		if id == actingUserID {
			return true
		}
	}
	return false
}

// HasProjectAccess reports whether the acting user may view a project.
// Privileged roles see every project; others need a team entry, any
// project role qualifies, VIEWER included.
func HasProjectAccess(role models.Role, actingUserID string, team []models.TeamMember) bool {
	if models.RoleWeight(role) >= models.RoleWeight(models.RoleCsoportVezeto) {
		return true
	}
	for _, member := range team {
		if member.UserID == actingUserID {
			return true
		}
	}
	return false
}
