// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"strings"
)

// Role is the coarse entitlement simulation switch.
type Role string

// The two fixed roles. RoleGeneral is the initial role of every session.
const (
	RoleGeneral     Role = "General"
	RoleEngineering Role = "Engineering"
)

// Toggle returns the other role.
func (r Role) Toggle() Role {
	if r == RoleEngineering {
		return RoleGeneral
	}

	return RoleEngineering
}

// IsTechnical reports whether the role is entitled to technical apps.
func (r Role) IsTechnical() bool {
	return r == RoleEngineering
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "general":
		return RoleGeneral, nil
	case "engineering":
		return RoleEngineering, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
}
