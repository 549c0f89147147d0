// Package authz holds the ownership/role policy as pure functions over an
// already-resolved identity and an already-loaded resource. Handlers decide
// 401 (no identity) and 404 (no resource) before these run, so a false here
// always means 403.
package authz

import "inkwell/internal/entity"

// Identity is the decoded result of a verified bearer token.
type Identity struct {
	UserID string
	Role   entity.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// CanEdit allows content mutation only for the recorded author. Admins get no
// edit rights over other people's content, only delete rights.
func CanEdit(id Identity, authorID string) bool {
	return id.UserID == authorID
}

// CanDelete allows the author or any admin.
func CanDelete(id Identity, authorID string) bool {
	return id.UserID == authorID || id.IsAdmin()
}
