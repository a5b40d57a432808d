package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadInput               = "EACCOUNTING_BAD_INPUT"
	ErrorOperationUnsupported   = "EACCOUNTING_OPERATION_UNSUPPORTED"
	ErrorResourceMisconfigured  = "EACCOUNTING_RESOURCE_MISCONFIGURED"
	ErrorRequestFailed          = "EACCOUNTING_REQUEST_FAILED"
	ErrorDecodeFailed           = "EACCOUNTING_DECODE_FAILED"
	ErrorTokenStoreUnavailable  = "EACCOUNTING_TOKEN_STORE_UNAVAILABLE"
	ErrorEncodeNotImplemented   = "EACCOUNTING_ENCODE_NOT_IMPLEMENTED"
	ErrorInternal               = "EACCOUNTING_INTERNAL_ERROR"
)

type ErrorMapper func(err error) *goerrors.Error

// NewUnsupportedOperationError flags a CRUD verb outside the resource's
// allowed set. Always a programmer error, never retried.
func NewUnsupportedOperationError(resourceName string, op Operation) error {
	return goerrors.New(
		"core: "+string(op)+" is not supported for "+resourceName,
		goerrors.CategoryOperation,
	).
		WithCode(http.StatusMethodNotAllowed).
		WithTextCode(ErrorOperationUnsupported).
		WithMetadata(map[string]any{
			"resource":  resourceName,
			"operation": string(op),
		})
}

// NewResourceConfigError flags missing resource metadata (no path, no
// identity key) needed to build a request.
func NewResourceConfigError(resourceName string, message string) error {
	return goerrors.New("core: "+message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorResourceMisconfigured).
		WithMetadata(map[string]any{"resource": resourceName})
}

// NewRequestFailedError wraps a non-success vendor response. Code carries
// the HTTP status; metadata carries the raw body for diagnosis.
func NewRequestFailedError(resourceName string, op Operation, status int, body []byte) error {
	return goerrors.New(
		fmt.Sprintf("core: %s %s returned status %d", op, resourceName, status),
		goerrors.CategoryExternal,
	).
		WithCode(status).
		WithTextCode(ErrorRequestFailed).
		WithMetadata(map[string]any{
			"resource":    resourceName,
			"operation":   string(op),
			"status_code": status,
			"body":        string(body),
		})
}

func NewDecodeError(source error, resourceName string) error {
	return goerrors.Wrap(source, goerrors.CategoryBadInput, "core: decode "+resourceName+" payload").
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorDecodeFailed).
		WithMetadata(map[string]any{"resource": resourceName})
}

func NewBadInputError(message string) error {
	return goerrors.New("core: "+message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorBadInput)
}

func defaultErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}
	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = categoryHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorBadInput
	case goerrors.CategoryOperation:
		return ErrorOperationUnsupported
	case goerrors.CategoryExternal:
		return ErrorRequestFailed
	default:
		return ErrorInternal
	}
}

func categoryHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
