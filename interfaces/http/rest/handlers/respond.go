// Package handlers maps the HTTP surface onto the notification service
// contract. Handlers stay thin: decode, attach the caller's token, call the
// service, encode.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/pkg/auth"
	"beacon-backend/pkg/common"
	pkgerrors "beacon-backend/pkg/errors"
)

// bearerToken builds the caller's token from the Authorization header. The
// user ID is read from the unverified subject claim; nothing downstream
// trusts it until the authentication layer has verified the token itself.
func bearerToken(r *http.Request) valueobjects.AuthToken {
	raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
	if raw == "" {
		return valueobjects.AuthToken{}
	}

	token := valueobjects.AuthToken{TokenID: raw}

	var claims auth.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err == nil {
		token.UserID = claims.UserID
	}
	return token
}

// resolveToken prefers the header credential over one carried in the body
func resolveToken(r *http.Request, bodyToken valueobjects.AuthToken) valueobjects.AuthToken {
	if header := bearerToken(r); !header.IsZero() {
		return header
	}
	return bodyToken
}

// respond writes a success payload
func respond(w http.ResponseWriter, status int, data interface{}) {
	common.RespondJSON(w, status, data)
}

// respondError translates a service error into an HTTP response
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var svcErr *pkgerrors.ServiceError
	if errors.As(err, &svcErr) {
		common.RespondError(w, svcErr.HTTPStatus(), string(svcErr.Kind), svcErr.Message)
		return
	}

	logger.Error("Unclassified handler error", zap.Error(err))
	common.RespondError(w, http.StatusInternalServerError, string(pkgerrors.KindInternal), "internal error")
}
