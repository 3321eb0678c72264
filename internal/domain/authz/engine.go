// Package authz centralizes the authorization rules for the gallery.
// Handlers never check roles or ownership themselves; they describe the
// attempted action and evaluation happens here, against one rule table.
package authz

// Facts are the resource lookups an evaluation may depend on. The gate
// collects only the facts the action's rule actually needs.
type Facts struct {
	ResourceFound bool
	OwnerID       uint
	LikeExists    bool
}

// EvaluateIdentity runs the identity-only predicates (authentication and
// role) for action. The gate calls this before any resource lookup so a
// request that fails cheaply never touches the ownership store.
func EvaluateIdentity(identity Identity, action Action) Decision {
	r, ok := rules[action]
	if !ok {
		// fail closed on unrecognized actions
		return Deny(ReasonNotFound)
	}

	if r.requireAuth && identity.IsAnonymous() {
		return Deny(ReasonNotAuthenticated)
	}
	if r.role != "" && identity.Role != r.role {
		return Deny(ReasonWrongRole)
	}

	return Allow()
}

// Evaluate applies the full rule for action: authentication, role, then
// ownership/uniqueness. The first failing predicate determines the reason.
func Evaluate(identity Identity, action Action, facts Facts) Decision {
	if d := EvaluateIdentity(identity, action); !d.Allowed {
		return d
	}

	switch rules[action].ownership {
	case checkOwner:
		if !facts.ResourceFound {
			return Deny(ReasonNotFound)
		}
		if facts.OwnerID != identity.ID {
			return Deny(ReasonNotOwner)
		}
	case checkLikeAbsent:
		if !facts.ResourceFound {
			return Deny(ReasonNotFound)
		}
		if facts.LikeExists {
			return Deny(ReasonAlreadyExists)
		}
	case checkLikeAny:
		// removing a like that does not exist is a no-op, so no facts
		// are consulted here
	}

	return Allow()
}
