package bba

// NetworkInfo is the membership collaborator BBA consumes: it never owns
// transport or authentication, only answers questions about the validator
// set. A concrete implementation lives in consensus/bba/membership; it is
// read-only and safely shared across every Agreement/CommonCoin instance
// bound to the same session.
type NetworkInfo interface {
	// NumNodes returns N, the total member count.
	NumNodes() int
	// NumFaulty returns f, the maximum tolerated Byzantine count; 3f < N.
	NumFaulty() int
	// IsValidator reports whether the local node is a voting validator.
	IsValidator() bool
	// OurID returns the local node's identifier.
	OurID() NodeID
	// NodeIndex returns id's position in the canonical validator ordering,
	// or false if id is not a member.
	NodeIndex(id NodeID) (int, bool)
	// InvocationID returns the session-wide domain-separation tag mixed
	// into every Nonce.
	InvocationID() []byte
}
