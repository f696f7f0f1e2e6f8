package spintax

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Generation errors
	ErrMsgInvalidMode = "unknown generation mode"

	// Registry errors
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgTemplateExists    = "template already registered"
	ErrMsgTemplateNotFound  = "template not found"

	// Spin-set errors
	ErrMsgSetEmpty     = "spin set document is empty"
	ErrMsgSetMarshal   = "spin set YAML marshaling failed"
	ErrMsgSetUnmarshal = "spin set YAML unmarshaling failed"
)

// Error code constants for categorization
const (
	ErrCodeGenerate = "SPINTAX_GENERATE"
	ErrCodeRegistry = "SPINTAX_REGISTRY"
	ErrCodeSet      = "SPINTAX_SET"
)

// Metadata key constants
const (
	MetaKeyMode     = "mode"
	MetaKeyTemplate = "template"
	MetaKeySet      = "set"
)

// NewInvalidModeError creates an error for an unrecognized generation mode.
func NewInvalidModeError(mode Mode) error {
	return cuserr.NewValidationError(ErrCodeGenerate, ErrMsgInvalidMode).
		WithMetadata(MetaKeyMode, string(mode))
}

// NewEmptyTemplateNameError creates an error for a blank registry name.
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTemplateName)
}

// NewTemplateExistsError creates a registry collision error.
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplate, name)
}

// NewTemplateNotFoundError creates an error for a missing registry entry.
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name)
}

// NewSetEmptyError creates an error for an empty spin-set document.
func NewSetEmptyError() error {
	return cuserr.NewValidationError(ErrCodeSet, ErrMsgSetEmpty)
}

// NewSetMarshalError creates an error for spin-set serialization failure.
func NewSetMarshalError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSet, ErrMsgSetMarshal)
}

// NewSetUnmarshalError creates an error for spin-set parsing failure.
func NewSetUnmarshalError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSet, ErrMsgSetUnmarshal)
}
