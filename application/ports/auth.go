package ports

import (
	"context"

	"beacon-backend/domain/core/valueobjects"
)

// TokenVerifier is the authentication authority collaborator. Exactly one
// VerifyToken call is made per guarded service invocation.
type TokenVerifier interface {
	// VerifyToken checks a token ID against the authority. A nil return
	// means the token maps to an active session; any other outcome is an
	// invalid-token failure. There is no partial validity.
	VerifyToken(ctx context.Context, tokenID string) error
}

// TokenIssuer creates tokens on behalf of the authority. Used only by the
// sign-in and sign-up operations, which are exempt from verification.
type TokenIssuer interface {
	// IssueToken creates a new token for the given user
	IssueToken(ctx context.Context, userID valueobjects.UserID) (valueobjects.AuthToken, error)
}
