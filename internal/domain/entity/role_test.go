package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleInstructor}

	assert.True(t, roles.Contains(RoleInstructor))
	assert.False(t, roles.Contains(RoleStudent))
	assert.False(t, Roles{}.Contains(RoleStudent))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleInstructor.IsValid())
	assert.False(t, Role("Admin").IsValid())
	assert.False(t, Role("student").IsValid())
}
