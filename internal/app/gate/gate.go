// Package gate is the request-facing authorization boundary. It resolves
// the session to an identity, gathers the resource facts a rule needs and
// evaluates the authz rule table. It never performs the protected action
// itself, so it can be exercised with fake collaborators and no database.
package gate

import (
	"context"
	"errors"
	"log"
	"time"

	"artgallery-app/internal/domain/authz"
)

// Resolver turns an opaque session token into an identity. A missing,
// expired or malformed token resolves to Anonymous with a nil error; an
// error means the identity backend itself failed.
type Resolver interface {
	Resolve(ctx context.Context, token string) (authz.Identity, error)
}

const defaultTimeout = 3 * time.Second

type Gate struct {
	resolver Resolver
	store    OwnershipReader
	timeout  time.Duration
}

func New(resolver Resolver, store OwnershipReader) *Gate {
	return &Gate{resolver: resolver, store: store, timeout: defaultTimeout}
}

// WithTimeout bounds every lookup made for a single decision. A timeout
// surfaces as Deny(infrastructure-error), never as an allow.
func (g *Gate) WithTimeout(d time.Duration) *Gate {
	g.timeout = d
	return g
}

// Authorize decides whether the session may perform action on the
// referenced resource. It is read-only: the caller performs the action
// after an Allow.
func (g *Gate) Authorize(ctx context.Context, token string, action authz.Action, ref *ResourceRef) authz.Decision {
	_, decision := g.Decide(ctx, token, action, ref)
	return decision
}

// Decide is Authorize plus the resolved identity, for callers that act on
// behalf of the requester after an Allow.
func (g *Gate) Decide(ctx context.Context, token string, action authz.Action, ref *ResourceRef) (authz.Identity, authz.Decision) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	identity, err := g.resolver.Resolve(ctx, token)
	if err != nil {
		log.Printf("gate: identity resolution failed: %v", err)
		return authz.Anonymous(), authz.Deny(authz.ReasonInfrastructure)
	}

	// Cheap predicates first; a request that fails authentication or role
	// never causes an ownership lookup.
	if d := authz.EvaluateIdentity(identity, action); !d.Allowed {
		return identity, d
	}

	var facts authz.Facts
	if authz.NeedsResource(action) {
		if ref == nil {
			return identity, authz.Deny(authz.ReasonNotFound)
		}
		owner, err := g.store.OwnerOf(ctx, *ref)
		switch {
		case errors.Is(err, ErrNotFound):
			// leave facts.ResourceFound false; the rule decides
		case err != nil:
			log.Printf("gate: ownership lookup failed: %v", err)
			return identity, authz.Deny(authz.ReasonInfrastructure)
		default:
			facts.ResourceFound = true
			facts.OwnerID = owner
		}
	}
	if authz.NeedsLikeState(action) && facts.ResourceFound {
		exists, err := g.store.LikeExists(ctx, identity.ID, ref.ID)
		if err != nil {
			log.Printf("gate: like lookup failed: %v", err)
			return identity, authz.Deny(authz.ReasonInfrastructure)
		}
		facts.LikeExists = exists
	}

	return identity, authz.Evaluate(identity, action, facts)
}
