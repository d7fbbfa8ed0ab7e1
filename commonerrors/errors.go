// Package commonerrors defines the error kinds used across the module so that
// callers can determine the type of failure with errors.Is rather than by
// parsing error strings.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty       = errors.New("empty collection")
	ErrInvalid     = errors.New("invalid")
	ErrNotFound    = errors.New("not found")
	ErrTooLarge    = errors.New("too large")
	ErrUndefined   = errors.New("undefined")
	ErrUnsupported = errors.New("unsupported")
	ErrMarshalling = errors.New("unserialisable")
	ErrConflict    = errors.New("conflict")
	ErrUnknown     = errors.New("unknown")
)

const typeReasonSeparator = ':'

// New returns an error of kind errType with a description.
// The error text follows the `error type: reason` convention.
func New(errType error, description string) error {
	if errType == nil {
		if description == "" {
			return nil
		}
		return errors.New(description)
	}
	if description == "" {
		return errType
	}
	return fmt.Errorf("%w%v %v", errType, string(typeReasonSeparator), description)
}

// Newf is similar to New but with a formatted description.
func Newf(errType error, format string, args ...any) error {
	return New(errType, fmt.Sprintf(format, args...))
}

// WrapError wraps err into an error of kind errType. msg gives extra context about what happened.
func WrapError(errType error, err error, msg string) error {
	if IsEmpty(err) {
		return New(errType, msg)
	}
	if msg == "" {
		return New(errType, err.Error())
	}
	return Newf(errType, "%v; %v", msg, err.Error())
}

// WrapErrorf is similar to WrapError but with a formatted message.
func WrapErrorf(errType error, err error, format string, args ...any) error {
	return WrapError(errType, err, fmt.Sprintf(format, args...))
}

// Any states whether target corresponds to one of the provided error kinds.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether target corresponds to none of the provided error kinds.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo states whether the error description contains one of the
// provided descriptions (case insensitively).
func CorrespondTo(target error, descriptions ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range descriptions {
		if strings.Contains(desc, strings.ToLower(descriptions[i])) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is empty i.e. nil or with a blank description.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	return strings.TrimSpace(err.Error()) == ""
}

// GetCommonErrorReason returns the reason part of an error following the
// `error type: reason` convention. An error is returned when the text does not
// start with one of the common error kinds.
func GetCommonErrorReason(err error) (reason string, failure error) {
	if IsEmpty(err) {
		failure = New(ErrUndefined, "no error provided")
		return
	}
	errType, found := ParseCommonError(err.Error())
	if !found {
		reason = strings.TrimSpace(err.Error())
		failure = Newf(ErrNotFound, "error [%v] does not correspond to a common error", err)
		return
	}
	reason = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(err.Error()), errType.Error()))
	reason = strings.TrimSpace(strings.TrimPrefix(reason, string(typeReasonSeparator)))
	return
}

// ParseCommonError determines which common error kind the provided description
// starts with, if any.
func ParseCommonError(description string) (errType error, found bool) {
	description = strings.ToLower(strings.TrimSpace(description))
	for _, known := range []error{
		ErrEmpty,
		ErrInvalid,
		ErrNotFound,
		ErrTooLarge,
		ErrUndefined,
		ErrUnsupported,
		ErrMarshalling,
		ErrConflict,
		ErrUnknown,
	} {
		if strings.HasPrefix(description, known.Error()) {
			errType = known
			found = true
			return
		}
	}
	return
}
