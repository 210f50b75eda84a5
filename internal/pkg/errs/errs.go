package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// ObjectNotFoundError reports that an identity is absent from a store.
// ParamName names the kind of object ("product", "order").
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValidationError is the catch-all for state and precondition violations:
// duplicate names, illegal status transitions, referenced products and so on.
type ValidationError struct {
	Reason string
	Cause  error
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func NewValidationErrorWithCause(reason string, cause error) *ValidationError {
	return &ValidationError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValidation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InsufficientStockError reports a request for more units than a product holds.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func NewInsufficientStockError(productName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s for product '%s': requested %d, available %d",
		ErrInsufficientStock, sanitize(e.ProductName), e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type InvalidPriceError struct {
	Price decimal.Decimal
}

func NewInvalidPriceError(price decimal.Decimal) *InvalidPriceError {
	return &InvalidPriceError{Price: price}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %s is not greater than 0", ErrInvalidPrice, e.Price.String())
}

func (e *InvalidPriceError) Unwrap() error {
	return ErrInvalidPrice
}

type InvalidQuantityError struct {
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprint(v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
