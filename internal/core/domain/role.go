package domain

import "fmt"

// Role is the closed set of actor roles. A user's role is fixed at creation
// and determines which profile entity (Doctor, Assistant, or none) it owns.
type Role string

const (
	RoleGeneralManager Role = "general_manager"
	RoleDoctor         Role = "doctor"
	RoleAssistant      Role = "assistant"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleGeneralManager, RoleDoctor, RoleAssistant:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
