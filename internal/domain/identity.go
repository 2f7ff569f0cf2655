package domain

// AuthenticationID is the external subject identifier extracted from a
// verified bearer token. It is stable for the lifetime of an account and
// keys the identity cache.
type AuthenticationID string

// UserIdentity is the internal account record resolved from an
// AuthenticationID. The mapping is assigned at account creation and never
// changes afterwards.
type UserIdentity struct {
	UserID           string
	AuthenticationID AuthenticationID
	Email            string
}

// OperationClass declares the minimum authentication work an operation
// requires. Every route declares its class at registration time; nothing
// may upgrade a validity-only operation to a full identity resolution.
type OperationClass int

const (
	// ClassValidityOnly requires proof of a currently valid token. The
	// caller's internal identity is never resolved.
	ClassValidityOnly OperationClass = iota
	// ClassIdentityRequired requires the token to resolve to an internal
	// user record before the operation may proceed.
	ClassIdentityRequired
)

// String returns the class name for logging.
func (c OperationClass) String() string {
	switch c {
	case ClassValidityOnly:
		return "validity-only"
	case ClassIdentityRequired:
		return "identity-required"
	default:
		return "unknown"
	}
}

// Principal is the authenticated caller attached to a request context.
// Identity is nil for validity-only operations.
type Principal struct {
	AuthenticationID AuthenticationID
	Identity         *UserIdentity
}
