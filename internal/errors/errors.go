package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound                = NewAppError("NOT_FOUND", "Resource not found")
	ErrBadRequest              = NewAppError("BAD_REQUEST", "Invalid request")
	ErrValidation              = NewAppError("VALIDATION_ERROR", "Validation failed")
	ErrInternal                = NewAppError("INTERNAL_ERROR", "Internal error")
	ErrGoalNotFound            = NewAppError("GOAL_NOT_FOUND", "Goal not found")
	ErrBillerNotFound          = NewAppError("BILLER_NOT_FOUND", "Biller not found")
	ErrAssetNotFound           = NewAppError("ASSET_NOT_FOUND", "Investment option not found")
	ErrNoSavings               = NewAppError("NO_SAVINGS", "You need to have saved some money before paying bills")
	ErrInsufficientSavings     = NewAppError("INSUFFICIENT_SAVINGS", "Your total savings are not enough to cover this amount")
	ErrNoGoalBalance           = NewAppError("NO_GOAL_BALANCE", "This goal has no savings, choose another goal or total savings")
	ErrInsufficientGoalBalance = NewAppError("INSUFFICIENT_GOAL_BALANCE", "The selected goal does not have enough savings")
	ErrSavingPeriodActive      = NewAppError("SAVING_PERIOD_ACTIVE", "Bills can be paid only after the saving duration is completed and automatic deduction is off")
	ErrUnknownAction           = NewAppError("UNKNOWN_ACTION", "Unknown scenario action")
)

type AppError struct {
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so clones produced by WithError/WithDetails still
// satisfy errors.Is against the sentinel they came from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "CANCELED", "Operation canceled")
	}

	return WrapError(err, "UNKNOWN_ERROR", "Unknown error")
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:    ErrValidation.Code,
		Message: message,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound.Code,
		Message: fmt.Sprintf("%s not found", resource),
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translateFieldName(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:    ErrValidation.Code,
		Message: "Some fields are invalid",
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
		Err: err,
	}
}

func translateFieldName(field string) string {
	fieldMap := map[string]string{
		"amount":          "amount",
		"name":            "name",
		"targetamount":    "target amount",
		"allocationtype":  "allocation type",
		"allocationvalue": "allocation value",
		"deductiontype":   "deduction type",
		"durationmonths":  "saving duration",
		"billerid":        "biller",
		"referencetype":   "reference type",
		"referencevalue":  "reference",
		"assetid":         "investment option",
		"currency":        "currency",
		"level":           "log level",
	}
	if translated, ok := fieldMap[strings.ToLower(field)]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fieldName)
	default:
		return fmt.Sprintf("validation '%s' failed for %s", fe.Tag(), fieldName)
	}
}
