package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{"empty list has no top role", nil, ""},
		{"single role", []string{"user"}, "user"},
		{"admin beats user", []string{"user", "admin"}, "admin"},
		{"superadmin beats everything", []string{"admin", "superadmin", "user"}, "superadmin"},
		{"case insensitive", []string{"USER", "Admin"}, "Admin"},
		{"unknown roles sort last", []string{"editor", "user"}, "user"},
		{"only unknown roles still pick one", []string{"editor"}, "editor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopRole(tt.roles))
		})
	}
}

func TestIsModerator(t *testing.T) {
	assert.True(t, IsModerator([]string{"superuser"}))
	assert.True(t, IsModerator([]string{"admin"}))
	assert.True(t, IsModerator([]string{"superadmin"}))
	assert.True(t, IsModerator([]string{"user", "superuser"}))
	assert.False(t, IsModerator([]string{"user"}))
	assert.False(t, IsModerator([]string{"editor"}))
	assert.False(t, IsModerator(nil))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin([]string{"admin"}))
	assert.True(t, IsAdmin([]string{"superadmin"}))
	assert.False(t, IsAdmin([]string{"superuser"}))
	assert.False(t, IsAdmin([]string{"user"}))
}

func TestRoleRank(t *testing.T) {
	assert.Less(t, RoleRank(RoleSuperadmin), RoleRank(RoleAdmin))
	assert.Less(t, RoleRank(RoleAdmin), RoleRank(RoleSuperuser))
	assert.Less(t, RoleRank(RoleSuperuser), RoleRank(RoleUser))
	assert.Greater(t, RoleRank("whatever"), RoleRank(RoleUser))
}
