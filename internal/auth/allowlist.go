package auth

// Allowlist decides whether a username may perform privileged actions.
// The blog is single-author, so the predicate is a single owner name, but
// it is injected rather than hardcoded so policy stays testable.
type Allowlist interface {
	IsSiteOwner(name string) bool
}

// OwnerAllowlist allows exactly one configured username.
type OwnerAllowlist struct {
	owner string
}

// NewOwnerAllowlist creates an allowlist for the given owner name.
func NewOwnerAllowlist(owner string) *OwnerAllowlist {
	return &OwnerAllowlist{owner: owner}
}

// IsSiteOwner reports whether name is the configured site owner.
func (a *OwnerAllowlist) IsSiteOwner(name string) bool {
	return name != "" && name == a.owner
}
