// file: internals/features/users/model/user_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	cases := map[string]UserRole{
		"admin":        RoleAdmin,
		"student":      RoleStudent,
		"Professional": RoleProfessional,
		"  PATIENT  ":  RolePatient,
	}
	for raw, want := range cases {
		got, ok := ParseUserRole(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "doctor", "superadmin"} {
		_, ok := ParseUserRole(raw)
		assert.False(t, ok, raw)
	}
}

func TestUserRoleGating(t *testing.T) {
	assert.True(t, RoleStudent.RequiresCredential())
	assert.True(t, RoleProfessional.RequiresCredential())
	assert.False(t, RolePatient.RequiresCredential())
	assert.False(t, RoleAdmin.RequiresCredential())

	assert.True(t, RoleStudent.Gated())
	assert.True(t, RoleProfessional.Gated())
	assert.False(t, RolePatient.Gated())
	assert.False(t, RoleAdmin.Gated())
}

func TestUserRoleScanNormalizes(t *testing.T) {
	var r UserRole
	require.NoError(t, r.Scan("  Student "))
	assert.Equal(t, RoleStudent, r)

	require.NoError(t, r.Scan([]byte("ADMIN")))
	assert.Equal(t, RoleAdmin, r)

	require.NoError(t, r.Scan(nil))
	assert.Equal(t, UserRole(""), r)
}

func TestUserStatusScanNormalizes(t *testing.T) {
	var s UserStatus
	require.NoError(t, s.Scan("Pre_Approved"))
	assert.Equal(t, StatusPreApproved, s)

	v, err := StatusApproved.Value()
	require.NoError(t, err)
	assert.Equal(t, "approved", v)
}

func TestFullName(t *testing.T) {
	second := "Luis"
	secondSurname := "García"
	u := UserModel{
		FirstName:     "José",
		SecondName:    &second,
		FirstSurname:  "Pérez",
		SecondSurname: &secondSurname,
	}
	assert.Equal(t, "José Luis Pérez García", u.FullName())

	plain := UserModel{FirstName: "Ana", FirstSurname: "Ruiz"}
	assert.Equal(t, "Ana Ruiz", plain.FullName())
}
