// Package authority adapts token issuing and verification backends to the
// application's auth ports. Tokens are either minted and checked locally or
// checked against a remote authentication authority over HTTP.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/pkg/auth"
	"beacon-backend/pkg/common"
	"beacon-backend/pkg/observability"
)

// LocalAuthority issues and verifies tokens in-process
type LocalAuthority struct {
	tokens *auth.TokenService
	logger *zap.Logger
}

var (
	_ ports.TokenIssuer   = (*LocalAuthority)(nil)
	_ ports.TokenVerifier = (*LocalAuthority)(nil)
)

// NewLocalAuthority creates an in-process token authority
func NewLocalAuthority(tokens *auth.TokenService, logger *zap.Logger) (*LocalAuthority, error) {
	if tokens == nil {
		return nil, errors.New("token service is required")
	}
	return &LocalAuthority{tokens: tokens, logger: logger}, nil
}

// IssueToken mints a fresh token for the user
func (a *LocalAuthority) IssueToken(ctx context.Context, userID valueobjects.UserID) (valueobjects.AuthToken, error) {
	signed, err := a.tokens.IssueToken(userID.String())
	if err != nil {
		return valueobjects.AuthToken{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return valueobjects.AuthToken{TokenID: signed, UserID: userID.String()}, nil
}

// VerifyToken checks the token's signature and expiry
func (a *LocalAuthority) VerifyToken(ctx context.Context, tokenID string) error {
	if _, err := a.tokens.VerifyToken(tokenID); err != nil {
		return err
	}
	return nil
}

// RemoteVerifier checks tokens against an external authentication authority
type RemoteVerifier struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

var _ ports.TokenVerifier = (*RemoteVerifier)(nil)

// NewRemoteVerifier creates a verifier backed by the authority at endpoint
func NewRemoteVerifier(endpoint string, logger *zap.Logger) (*RemoteVerifier, error) {
	if endpoint == "" {
		return nil, errors.New("authority endpoint is required")
	}
	return &RemoteVerifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}, nil
}

type verifyRequest struct {
	TokenID string `json:"token_id"`
}

type verifyResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// VerifyToken asks the authority whether the token is valid
func (v *RemoteVerifier) VerifyToken(ctx context.Context, tokenID string) error {
	body, err := json.Marshal(verifyRequest{TokenID: tokenID})
	if err != nil {
		return fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("authority unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return auth.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("authority returned status %d", resp.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode verify response: %w", err)
	}
	if !result.Valid {
		requestID := common.GetRequestID(ctx)
		v.logger.Debug("Token rejected by authority",
			zap.String("reason", result.Reason),
			zap.String("requestID", requestID),
		)
		return auth.ErrInvalidToken
	}
	return nil
}

// MeteredVerifier records the outcome of every verification before handing
// the delegate's result back unchanged
type MeteredVerifier struct {
	next    ports.TokenVerifier
	metrics *observability.Metrics
}

var _ ports.TokenVerifier = (*MeteredVerifier)(nil)

// NewMeteredVerifier wraps next with outcome counters
func NewMeteredVerifier(next ports.TokenVerifier, metrics *observability.Metrics) (*MeteredVerifier, error) {
	if next == nil {
		return nil, errors.New("token verifier is required")
	}
	return &MeteredVerifier{next: next, metrics: metrics}, nil
}

// VerifyToken delegates the check and counts the outcome
func (m *MeteredVerifier) VerifyToken(ctx context.Context, tokenID string) error {
	if err := m.next.VerifyToken(ctx, tokenID); err != nil {
		m.metrics.CountTokenVerification(ctx, "rejected")
		return err
	}
	m.metrics.CountTokenVerification(ctx, "accepted")
	return nil
}
