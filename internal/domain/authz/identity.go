package authz

type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleArtist Role = "artist"
	RoleAdmin  Role = "admin"
)

// Identity is the requester an authorization decision is made for.
// The zero ID marks an anonymous requester; absence of identity is a
// normal outcome of resolution, never an error.
type Identity struct {
	ID   uint
	Name string
	Role Role
}

func Anonymous() Identity {
	return Identity{Role: RoleGuest}
}

func (i Identity) IsAnonymous() bool {
	return i.ID == 0
}
