package authz

type Reason string

const (
	ReasonNotAuthenticated Reason = "not-authenticated"
	ReasonWrongRole        Reason = "wrong-role"
	ReasonNotOwner         Reason = "not-owner"
	ReasonAlreadyExists    Reason = "already-exists"
	ReasonNotFound         Reason = "not-found"
	ReasonInfrastructure   Reason = "infrastructure-error"
)

// Decision is the outcome of an authorization check. Denials are values,
// not errors: every expected refusal carries a typed reason.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}
