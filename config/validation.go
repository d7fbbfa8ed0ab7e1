package config

import (
	"reflect"

	"github.com/queuekit/queuekit/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them.
// Validation failures are reported as commonerrors.ErrInvalid and name the
// field which did not pass.
func ValidateEmbedded(cfg IServiceConfiguration) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "configuration entry [%v] failed validation", r.Type().Field(i).Name)
		}
	}
	return nil
}
