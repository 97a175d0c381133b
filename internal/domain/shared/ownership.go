package shared

import (
	"github.com/oklog/ulid/v2"
)

// Actor is the acting identity for permission checks, detached from any
// request pipeline so predicates can be tested against synthetic values.
type Actor struct {
	ID            ulid.ULID
	Authenticated bool
	Staff         bool
}

// Ownable is implemented by every entity that belongs to exactly one user.
// For chained entities (needs, reward tiers, pledge details) the returned id
// is the owner of the root entity the permission model cares about.
type Ownable interface {
	OwnerUserID() ulid.ULID
}

// CanModify reports whether the actor may mutate an owner-gated entity.
// Reads are never gated, so callers only consult this for writes.
func CanModify(actor Actor, obj Ownable) bool {
	if !actor.Authenticated {
		return false
	}
	return obj.OwnerUserID() == actor.ID
}

// CanModifyTemplate allows the template owner or staff to mutate a template
// or one of its child rows.
func CanModifyTemplate(actor Actor, obj Ownable) bool {
	if !actor.Authenticated {
		return false
	}
	if actor.Staff {
		return true
	}
	return obj.OwnerUserID() == actor.ID
}

// CanAdministerTemplates gates template collection writes (create) behind
// staff privilege.
func CanAdministerTemplates(actor Actor) bool {
	return actor.Authenticated && actor.Staff
}
