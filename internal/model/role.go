package model

import "strings"

// Role is the catalogue of assignable role names.
type Role struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:32;not null"`
}

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleSuperuser  = "superuser"
	RoleUser       = "user"
)

// KnownRoles in rank order, most privileged first.
var KnownRoles = []string{RoleSuperadmin, RoleAdmin, RoleSuperuser, RoleUser}

var roleRank = map[string]int{
	RoleSuperadmin: 0,
	RoleAdmin:      1,
	RoleSuperuser:  2,
	RoleUser:       3,
}

const unknownRank = 100

// RoleRank returns the rank of a role name, lower = more privileged.
// Names outside the known set sort last.
func RoleRank(role string) int {
	if r, ok := roleRank[strings.ToLower(role)]; ok {
		return r
	}
	return unknownRank
}

// TopRole picks the single highest-ranked role. Empty string when the
// list is empty. Ties keep the first occurrence.
func TopRole(roles []string) string {
	top := ""
	best := unknownRank + 1
	for _, role := range roles {
		if r := RoleRank(role); r < best {
			best = r
			top = role
		}
	}
	return top
}

// IsModerator reports whether any of the roles grants comment
// moderation (superuser and up).
func IsModerator(roles []string) bool {
	for _, role := range roles {
		if RoleRank(role) <= roleRank[RoleSuperuser] {
			return true
		}
	}
	return false
}

// IsAdmin reports whether any of the roles is admin or superadmin.
func IsAdmin(roles []string) bool {
	for _, role := range roles {
		if RoleRank(role) <= roleRank[RoleAdmin] {
			return true
		}
	}
	return false
}
