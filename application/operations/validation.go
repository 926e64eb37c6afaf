// Package operations contains one business operation per service method.
// Each operation validates its request before any repository access, performs
// one primary state change, and may fan out best-effort side effects whose
// failures are logged and isolated.
package operations

import (
	"github.com/go-playground/validator/v10"

	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// validate performs struct-tag validation for requests that carry tagged
// payload fields (provision, sign-in, sign-up)
var validate = validator.New()

// checkStruct runs struct-tag validation, mapping failures to
// invalid-argument errors
func checkStruct(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return pkgerrors.NewInvalidArgument(err.Error())
	}
	return nil
}

// requireCaller extracts and validates the caller's user ID from the request
// token. Operations behind the authentication layer still validate the
// token's fields: verification proves the session, not the shape.
func requireCaller(token valueobjects.AuthToken) (valueobjects.UserID, error) {
	if token.IsZero() {
		return valueobjects.UserID{}, pkgerrors.NewInvalidArgument("request missing token")
	}
	userID, err := valueobjects.NewUserIDFromString(token.UserID)
	if err != nil {
		return valueobjects.UserID{}, pkgerrors.NewInvalidArgument("token user ID must be a valid UUID")
	}
	return userID, nil
}

// requireApplicationID validates an application ID request field
func requireApplicationID(id string) (valueobjects.ApplicationID, error) {
	appID, err := valueobjects.NewApplicationIDFromString(id)
	if err != nil {
		return valueobjects.ApplicationID{}, pkgerrors.NewInvalidArgument(err.Error())
	}
	return appID, nil
}

// requireMessageID validates a message ID request field
func requireMessageID(id string) (valueobjects.MessageID, error) {
	msgID, err := valueobjects.NewMessageIDFromString(id)
	if err != nil {
		return valueobjects.MessageID{}, pkgerrors.NewInvalidArgument(err.Error())
	}
	return msgID, nil
}
