// Package messagecontext holds the read-only configuration consumed when
// encoding and decoding messages: the namespace and server identifiers known
// to a session and the ceilings applied to variable length values. The
// configuration is a passive value bag; collaborators read it, never write it.
package messagecontext

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/queuekit/queuekit/collection"
	"github.com/queuekit/queuekit/commonerrors"
)

const (
	// DefaultMaxLength is the ceiling applied by default to strings, arrays and byte strings.
	DefaultMaxLength uint32 = 65535
	// DefaultNamespaceIdentifier is the one namespace every context knows about.
	DefaultNamespaceIdentifier = "urn:queuekit:namespace:default"
)

// Configuration describes an encoding context. A zero ceiling means the
// corresponding limit is not enforced.
type Configuration struct {
	// NamespaceIdentifiers lists the namespaces known to the context, in index order.
	NamespaceIdentifiers []string `mapstructure:"namespace_identifiers"`
	// ServerIdentifiers lists the servers known to the context, in index order.
	ServerIdentifiers []string `mapstructure:"server_identifiers"`
	// MaxStringLength is the maximum number of bytes accepted for a string value.
	MaxStringLength uint32 `mapstructure:"max_string_length"`
	// MaxArrayLength is the maximum number of elements accepted for an array value.
	MaxArrayLength uint32 `mapstructure:"max_array_length"`
	// MaxByteStringLength is the maximum number of bytes accepted for a byte string value.
	MaxByteStringLength uint32 `mapstructure:"max_byte_string_length"`
}

// Validate validates configuration entries.
func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.NamespaceIdentifiers, validation.Required, validation.By(wellFormedIdentifiers)),
		validation.Field(&cfg.ServerIdentifiers, validation.By(wellFormedIdentifiers)),
	)
}

func wellFormedIdentifiers(raw any) error {
	identifiers, ok := raw.([]string)
	if !ok {
		return commonerrors.Newf(commonerrors.ErrMarshalling, "expected a list of identifiers but got `%T`", raw)
	}
	if collection.AnyEmpty(true, identifiers) {
		return commonerrors.New(commonerrors.ErrInvalid, "identifiers cannot be blank")
	}
	if collection.HasDuplicates(identifiers) {
		return commonerrors.New(commonerrors.ErrInvalid, "identifiers must be unique")
	}
	return nil
}

// DefaultConfiguration returns the context used when nothing overrides it:
// one default namespace, no servers and the default ceilings.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		NamespaceIdentifiers: []string{DefaultNamespaceIdentifier},
		MaxStringLength:      DefaultMaxLength,
		MaxArrayLength:       DefaultMaxLength,
		MaxByteStringLength:  DefaultMaxLength,
	}
}
