package vast

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a parse failure.
type ErrorCode string

const (
	CodeUnknown               ErrorCode = "unknown"
	CodeSyntax                ErrorCode = "xml-syntax"
	CodeUnexpectedRootElement ErrorCode = "unexpected-root-element"
	CodeMissingMandatory      ErrorCode = "missing-mandatory-element"
	CodeConflictingVariant    ErrorCode = "conflicting-variant"
	CodeDeserialization       ErrorCode = "deserialization-failure"
	CodeLimitExceeded         ErrorCode = "limit-exceeded"
)

// ErrStructural matches, via errors.Is, every error raised for a well-formed
// document that does not have the shape of a VAST document.
var ErrStructural = errors.New("vast: document does not match the VAST structure")

// Coder is implemented by all errors returned from Parse.
type Coder interface {
	Code() ErrorCode
}

// ReadCode returns the code of err, or CodeUnknown.
func ReadCode(err error) ErrorCode {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeUnknown
}

// SyntaxError reports input that is not well-formed XML.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("vast: malformed XML: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error   { return e.Err }
func (e *SyntaxError) Code() ErrorCode { return CodeSyntax }

// UnexpectedRootElementError reports a document whose root is not <VAST>.
type UnexpectedRootElementError struct {
	Got string
}

func (e *UnexpectedRootElementError) Error() string {
	return fmt.Sprintf("vast: unexpected root element <%s>, want <%s>", e.Got, rootTag)
}

func (e *UnexpectedRootElementError) Is(target error) bool { return target == ErrStructural }
func (e *UnexpectedRootElementError) Code() ErrorCode      { return CodeUnexpectedRootElement }

// MissingMandatoryElementError reports a required child element missing
// under Path.
type MissingMandatoryElementError struct {
	Path    string
	Element string
}

func (e *MissingMandatoryElementError) Error() string {
	return fmt.Sprintf("vast: %s: missing mandatory element <%s>", e.Path, e.Element)
}

func (e *MissingMandatoryElementError) Is(target error) bool { return target == ErrStructural }
func (e *MissingMandatoryElementError) Code() ErrorCode      { return CodeMissingMandatory }

// ConflictingVariantError reports an Ad holding more than one InLine/Wrapper.
type ConflictingVariantError struct {
	Path string
}

func (e *ConflictingVariantError) Error() string {
	return fmt.Sprintf("vast: %s: exactly one of <InLine> or <Wrapper> is allowed", e.Path)
}

func (e *ConflictingVariantError) Is(target error) bool { return target == ErrStructural }
func (e *ConflictingVariantError) Code() ErrorCode      { return CodeConflictingVariant }

// DeserializationError reports any other mismatch found while binding.
type DeserializationError struct {
	Path   string
	Reason string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("vast: %s: %s", e.Path, e.Reason)
}

func (e *DeserializationError) Is(target error) bool { return target == ErrStructural }
func (e *DeserializationError) Code() ErrorCode      { return CodeDeserialization }

// LimitExceededError reports input rejected by the parser's Limits.
type LimitExceededError struct {
	Limit string
	Max   int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("vast: input exceeds %s limit of %d", e.Limit, e.Max)
}

func (e *LimitExceededError) Code() ErrorCode { return CodeLimitExceeded }
