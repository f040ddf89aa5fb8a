package service

// SessionKeyUserID is the attribute key under which a session stores the
// authenticated user's ID once login or registration succeeds.
const SessionKeyUserID = "user_id"

// Session is a per-request handle onto one server-side session record.
// Attribute writes are atomic with respect to concurrent readers.
type Session interface {
	// ID returns the opaque session identifier carried by the client cookie.
	ID() string

	// Get returns the attribute stored under key, if any.
	Get(key string) (any, bool)

	// Set stores an attribute under key, replacing any previous value.
	Set(key string, value any)

	// Destroy removes the session's server-side state. Destroying an
	// already-destroyed session is a no-op.
	Destroy()
}

// SessionStore maps opaque session identifiers to live sessions for the
// lifetime of the process.
type SessionStore interface {
	// New creates an empty session with a fresh opaque identifier.
	New() Session

	// Find returns the session for the given identifier, if it exists.
	Find(id string) (Session, bool)
}
