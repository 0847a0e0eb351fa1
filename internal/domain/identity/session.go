package identity

import (
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Session is the identity resolved for a single request by the
// authenticator. It is request-scoped and never cached across requests.
type Session struct {
	UserID   string
	Role     Role
	OutletID *uuid.UUID
}

// NewSession builds a session from the raw values carried by a credential.
// The role string is parsed exactly once here.
func NewSession(userID, role string, outletID *uuid.UUID) *Session {
	return &Session{
		UserID:   userID,
		Role:     ParseRole(role),
		OutletID: outletID,
	}
}

// Actor is an authorized principal: a session that has passed the
// privileged-role gate.
type Actor struct {
	UserID   string
	Role     Role
	OutletID *uuid.UUID
}

// Authorize is the pre-handler authorization gate. A nil session means the
// caller presented no valid credential; a session with a non-privileged role
// is rejected before any business logic runs.
func Authorize(session *Session) (*Actor, error) {
	if session == nil {
		return nil, shared.ErrUnauthorized
	}
	if !session.Role.IsPrivileged() {
		return nil, shared.ErrForbidden
	}
	return &Actor{
		UserID:   session.UserID,
		Role:     session.Role,
		OutletID: session.OutletID,
	}, nil
}

// EffectiveOutletID resolves which outlet an admin operation targets.
// A super admin acts on whichever outlet the request names (possibly none);
// every other admin is pinned to their own outlet and the client-supplied
// value is ignored. Returns nil when no outlet could be resolved - callers
// must treat that as a bad request, never default it.
func (a *Actor) EffectiveOutletID(requested *uuid.UUID) *uuid.UUID {
	if a.Role.IsSuperAdmin() {
		return requested
	}
	return a.OutletID
}

// OwnsOutlet reports whether the actor may mutate a resource belonging to
// the given outlet. This is checked after the target row is loaded, because
// the resource's true owner is only known then; EffectiveOutletID only
// bounds the query scope.
func (a *Actor) OwnsOutlet(outletID uuid.UUID) bool {
	if a.Role.IsSuperAdmin() {
		return true
	}
	if a.OutletID == nil {
		// No affiliation recorded for the admin; scope resolution has
		// already bounded what they can reach.
		return true
	}
	return *a.OutletID == outletID
}
