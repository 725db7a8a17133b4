// Package vast maps VAST XML documents onto the typed model in
// vast-core/internal/core/domain.
//
// Parsing is a pure function of the input text: it performs no I/O, keeps no
// state between calls and is safe for concurrent use. Wrapper redirects are
// not followed; fetching VASTAdTagURI is left to the caller.
package vast

import (
	"cmp"
	"errors"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"vast-core/internal/core/domain"
)

const (
	DefaultMaxInputBytes = 4 << 20
	DefaultMaxDepth      = 256
)

var (
	errNoRoot          = errors.New("document has no root element")
	errMultipleRoots   = errors.New("document has more than one root element")
	errTextOutsideRoot = errors.New("character data outside the root element")
)

// Limits bounds the work done for a single document. Zero values select the
// defaults.
type Limits struct {
	// MaxInputBytes caps the length of the XML text.
	MaxInputBytes int
	// MaxDepth caps element nesting, the root element being depth 1.
	MaxDepth int
}

func (l Limits) withDefaults() Limits {
	return Limits{
		MaxInputBytes: cmp.Or(max(l.MaxInputBytes, 0), DefaultMaxInputBytes),
		MaxDepth:      cmp.Or(max(l.MaxDepth, 0), DefaultMaxDepth),
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithLimits sets the input limits of the parser.
func WithLimits(l Limits) Option {
	return func(p *Parser) {
		p.limits = l.withDefaults()
	}
}

// Parser turns VAST XML text into a *domain.VAST. The zero value is not
// usable; construct it with NewParser.
type Parser struct {
	limits Limits
}

// NewParser returns a parser with default limits unless overridden by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{limits: Limits{}.withDefaults()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Limits returns the effective limits of the parser.
func (p *Parser) Limits() Limits {
	return p.limits
}

// Parse parses a complete VAST document. On failure it returns a nil
// document and one of *SyntaxError, *UnexpectedRootElementError,
// *MissingMandatoryElementError, *ConflictingVariantError,
// *DeserializationError or *LimitExceededError.
func (p *Parser) Parse(xml string) (*domain.VAST, error) {
	if len(xml) > p.limits.MaxInputBytes {
		return nil, &LimitExceededError{Limit: "input size", Max: p.limits.MaxInputBytes}
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		PreserveCData: true,
	}
	if err := doc.ReadFromString(xml); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	root := doc.Root()
	if depth(root) > p.limits.MaxDepth {
		return nil, &LimitExceededError{Limit: "nesting depth", Max: p.limits.MaxDepth}
	}
	if root.Tag != rootTag {
		return nil, &UnexpectedRootElementError{Got: root.FullTag()}
	}

	v, err := vastTable.bind(root, scope{path: rootTag})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Result is the outcome of ParseAsync.
type Result struct {
	Document *domain.VAST
	Err      error
}

// ParseAsync runs Parse on a new goroutine. The returned channel receives
// exactly one Result and is then closed.
func (p *Parser) ParseAsync(xml string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		doc, err := p.Parse(xml)
		ch <- Result{Document: doc, Err: err}
	}()
	return ch
}

var defaultParser = NewParser()

// Parse parses xml with the default limits.
func Parse(xml string) (*domain.VAST, error) {
	return defaultParser.Parse(xml)
}

// ParseAsync is the non-blocking form of Parse.
func ParseAsync(xml string) <-chan Result {
	return defaultParser.ParseAsync(xml)
}

// checkTopLevel enforces a single root element with only whitespace,
// comments, processing instructions and directives around it. The element
// reader checks nesting but accepts any sequence of top-level tokens.
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if roots++; roots > 1 {
				return errMultipleRoots
			}
		case *etree.CharData:
			if t.IsCData() || !t.IsWhitespace() {
				return errTextOutsideRoot
			}
		}
	}
	if roots == 0 {
		return errNoRoot
	}
	return nil
}

// depth returns the nesting depth of the tree under root without recursing.
func depth(root *etree.Element) int {
	type frame struct {
		el    *etree.Element
		level int
	}
	deepest := 0
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		deepest = max(deepest, f.level)
		for _, c := range f.el.ChildElements() {
			stack = append(stack, frame{c, f.level + 1})
		}
	}
	return deepest
}
