package authz

type ownershipCheck int

const (
	checkNone ownershipCheck = iota
	// requester must own the resource
	checkOwner
	// requester must not already hold a like edge for the artwork
	checkLikeAbsent
	// like edge may or may not exist; removal is idempotent
	checkLikeAny
)

type rule struct {
	requireAuth bool
	role        Role // "" means any authenticated role
	ownership   ownershipCheck
}

// The authoritative rule table. Predicates are evaluated in order:
// authentication, then role, then ownership/uniqueness. Actions missing
// from this table are denied outright.
var rules = map[Action]rule{
	ActionViewProtectedPage: {requireAuth: true},
	ActionUploadArtwork:     {requireAuth: true, role: RoleArtist},
	ActionDeleteArtwork:     {requireAuth: true, ownership: checkOwner},
	ActionLikeArtwork:       {requireAuth: true, ownership: checkLikeAbsent},
	ActionUnlikeArtwork:     {requireAuth: true, ownership: checkLikeAny},
	ActionPostComment:       {requireAuth: true},
}

// NeedsResource reports whether evaluating action requires the owning
// resource to be looked up first.
func NeedsResource(action Action) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}
	return r.ownership == checkOwner || r.ownership == checkLikeAbsent
}

// NeedsLikeState reports whether evaluating action requires knowing if a
// like edge already exists for (requester, artwork).
func NeedsLikeState(action Action) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}
	return r.ownership == checkLikeAbsent
}
