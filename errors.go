package localize

import "errors"

// Sentinel errors for table decoding and loading.
var (
	// ErrInvalidDocument is returned when a document matches none of the
	// supported table shapes. The returned error joins the failure of each
	// attempted shape.
	ErrInvalidDocument = errors.New("localize: document does not match any table shape")

	// ErrMissingField is returned when a pair object lacks its required
	// key or value member.
	ErrMissingField = errors.New("localize: required member is missing")

	// ErrInvalidField is returned when a member that must hold a string
	// holds something else.
	ErrInvalidField = errors.New("localize: member value must be a string")

	// ErrInvalidFile is returned by the file loaders for unsupported or
	// unparsable table files.
	ErrInvalidFile = errors.New("localize: invalid translation file")
)
