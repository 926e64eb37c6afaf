package valueobjects

// AuthToken is the caller credential attached to a request. The token is
// issued and owned by the authentication authority; this service only reads
// it and forwards the TokenID for verification.
type AuthToken struct {
	// TokenID is the opaque identifier verified against the authority
	TokenID string `json:"tokenId"`

	// UserID identifies the token's holder
	UserID string `json:"userId"`
}

// IsZero checks if the token carries no identifier at all
func (t AuthToken) IsZero() bool {
	return t.TokenID == "" && t.UserID == ""
}
