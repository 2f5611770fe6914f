package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLabel(t *testing.T) {
	cases := []struct {
		roleID int
		label  string
	}{
		{RoleAdmin, "Admin"},
		{RoleReceptionist, "Receptionist"},
		{RoleBilling, "Billing"},
		{0, "Operator"},
		{103, "Operator"},
		{-1, "Operator"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, RoleLabel(tc.roleID), "role %d", tc.roleID)
	}
}
