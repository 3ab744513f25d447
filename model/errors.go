package model

import (
	"errors"
	"fmt"

	"github.com/traittech/trait-keyless/address"
	"github.com/traittech/trait-keyless/keyless"
)

type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrInvalidAddress ErrorCode = "INVALID_ADDRESS"
	ErrInvalidName    ErrorCode = "INVALID_NAME"
	ErrWrongVariant   ErrorCode = "WRONG_VARIANT"
	ErrInternal       ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case keyless.IsKind(err, keyless.KindName):
		return NewError(ErrInvalidName, err.Error())
	case keyless.IsKind(err, keyless.KindVariant):
		return NewError(ErrWrongVariant, err.Error())
	case errors.Is(err, address.ErrInvalidAddress):
		return NewError(ErrInvalidAddress, err.Error())
	}
	return NewError(ErrInternal, err.Error())
}
