package domain

import (
	"encoding/json"
	"errors"
)

// VAST is the root of a parsed Video Ad Serving Template document. Ads are
// kept in document order. A document with no Ad elements is valid and has
// an empty, non-nil Ads slice.
type VAST struct {
	Version  string `json:"version"`
	Sequence string `json:"sequence"`
	Ads      []Ad   `json:"ads"`
	// Error is the top-level error tracking URI used for "no ad" responses.
	Error string `json:"error"`
}

// AdKind names the variant held by an Ad.
type AdKind string

const (
	AdKindInLine  AdKind = "inline"
	AdKindWrapper AdKind = "wrapper"
)

// AdDetail is the mutually exclusive content of an Ad. It is implemented
// only by *InLine and *Wrapper.
type AdDetail interface {
	Kind() AdKind
	adDetail()
}

// Ad is a single ad in a VAST response. Detail always holds exactly one
// of *InLine or *Wrapper for an Ad returned by the parser.
type Ad struct {
	ID       string
	Sequence string
	Detail   AdDetail
	Error    string
}

// Kind returns the variant of the ad detail, or "" when the Ad was built
// by hand without one.
func (a Ad) Kind() AdKind {
	if a.Detail == nil {
		return ""
	}
	return a.Detail.Kind()
}

// InLine returns the InLine detail if the ad is an InLine ad.
func (a Ad) InLine() (*InLine, bool) {
	v, ok := a.Detail.(*InLine)
	return v, ok
}

// Wrapper returns the Wrapper detail if the ad is a Wrapper ad.
func (a Ad) Wrapper() (*Wrapper, bool) {
	v, ok := a.Detail.(*Wrapper)
	return v, ok
}

type adJSON struct {
	ID       string   `json:"id"`
	Sequence string   `json:"sequence"`
	InLine   *InLine  `json:"inLine,omitempty"`
	Wrapper  *Wrapper `json:"wrapper,omitempty"`
	Error    string   `json:"error"`
}

// MarshalJSON encodes the detail under an "inLine" or "wrapper" key.
func (a Ad) MarshalJSON() ([]byte, error) {
	out := adJSON{ID: a.ID, Sequence: a.Sequence, Error: a.Error}
	switch d := a.Detail.(type) {
	case *InLine:
		out.InLine = d
	case *Wrapper:
		out.Wrapper = d
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. Exactly one of "inLine" and
// "wrapper" must be present.
func (a *Ad) UnmarshalJSON(data []byte) error {
	var in adJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.InLine != nil && in.Wrapper != nil:
		return errors.New("ad holds both inLine and wrapper")
	case in.InLine != nil:
		a.Detail = in.InLine
	case in.Wrapper != nil:
		a.Detail = in.Wrapper
	default:
		return errors.New("ad holds neither inLine nor wrapper")
	}
	a.ID, a.Sequence, a.Error = in.ID, in.Sequence, in.Error
	return nil
}

// RawXML is an element that is carried through without being modeled. Markup
// is the verbatim serialized subtree, including the element's own tags.
type RawXML struct {
	Name   string `json:"name"`
	Markup string `json:"markup"`
}

// IsZero reports whether nothing was captured.
func (r RawXML) IsZero() bool {
	return r.Name == "" && r.Markup == ""
}

// String returns the captured markup.
func (r RawXML) String() string {
	return r.Markup
}
