package usecase

import "github.com/Akashi23/anime-quote/internal/domain/service"

// BoundUserID extracts the authenticated user ID from a session. A nil
// result means the session is not bound to any identity.
func BoundUserID(sess service.Session) *int64 {
	if sess == nil {
		return nil
	}

	value, ok := sess.Get(service.SessionKeyUserID)
	if !ok {
		return nil
	}

	id, ok := value.(int64)
	if !ok {
		return nil
	}

	return &id
}
