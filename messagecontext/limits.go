package messagecontext

import (
	"github.com/queuekit/queuekit/collection"
	"github.com/queuekit/queuekit/commonerrors"
)

// CheckString states whether s fits within the configured string ceiling.
// It returns commonerrors.ErrTooLarge otherwise.
func (cfg *Configuration) CheckString(s string) error {
	return checkLength(len(s), cfg.MaxStringLength, "string")
}

// CheckArrayLength states whether an array of the given length fits within the
// configured array ceiling. It returns commonerrors.ErrTooLarge otherwise.
func (cfg *Configuration) CheckArrayLength(length int) error {
	return checkLength(length, cfg.MaxArrayLength, "array")
}

// CheckByteString states whether b fits within the configured byte string
// ceiling. It returns commonerrors.ErrTooLarge otherwise.
func (cfg *Configuration) CheckByteString(b []byte) error {
	return checkLength(len(b), cfg.MaxByteStringLength, "byte string")
}

func checkLength(length int, ceiling uint32, what string) error {
	if length < 0 {
		return commonerrors.Newf(commonerrors.ErrInvalid, "negative %v length [%v]", what, length)
	}
	if ceiling == 0 {
		return nil
	}
	if uint64(length) > uint64(ceiling) {
		return commonerrors.Newf(commonerrors.ErrTooLarge, "%v length [%v] exceeds the configured ceiling [%v]", what, length, ceiling)
	}
	return nil
}

// NamespaceIndex returns the index of a namespace identifier in the context.
// It returns commonerrors.ErrNotFound for identifiers the context does not know about.
func (cfg *Configuration) NamespaceIndex(identifier string) (int, error) {
	return indexOf(cfg.NamespaceIdentifiers, identifier, "namespace")
}

// ServerIndex returns the index of a server identifier in the context.
// It returns commonerrors.ErrNotFound for identifiers the context does not know about.
func (cfg *Configuration) ServerIndex(identifier string) (int, error) {
	return indexOf(cfg.ServerIdentifiers, identifier, "server")
}

func indexOf(identifiers []string, identifier, what string) (int, error) {
	idx, found := collection.FindInSlice(true, identifiers, identifier)
	if !found {
		return -1, commonerrors.Newf(commonerrors.ErrNotFound, "unknown %v identifier [%v]", what, identifier)
	}
	return idx, nil
}
