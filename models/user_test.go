package models

import "testing"

func TestCanCreateRole(t *testing.T) {
	cases := []struct {
		actorRole string
		newRole   string
		want      bool
	}{
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleEmployee, false},
		{RoleSuperAdmin, RoleSuperAdmin, false},
		{RoleAdmin, RoleEmployee, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleEmployee, RoleEmployee, false},
		{RoleEmployee, RoleAdmin, false},
	}

	for _, tc := range cases {
		u := User{Role: tc.actorRole}
		if got := u.CanCreateRole(tc.newRole); got != tc.want {
			t.Errorf("%s creating %s = %v, want %v", tc.actorRole, tc.newRole, got, tc.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if !(&User{Role: RoleSuperAdmin}).IsAdmin() {
		t.Error("SUPERADMIN should be admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("ADMIN should be admin")
	}
	if (&User{Role: RoleEmployee}).IsAdmin() {
		t.Error("EMPLOYEE should not be admin")
	}
}
