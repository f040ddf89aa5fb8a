package service

import domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"

// Authorize decides whether the identity bound to a session may act on a
// record owned by ownerID. A nil sessionUserID means no authenticated
// session, which is a distinct failure from an ownership mismatch.
func Authorize(sessionUserID *int64, ownerID int64) error {
	if sessionUserID == nil {
		return domainerrors.ErrUnauthenticated
	}
	if *sessionUserID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}
