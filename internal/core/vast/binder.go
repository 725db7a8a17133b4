package vast

import (
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"vast-core/internal/core/domain"
)

// cardinality says how many matching child elements a scalar rule accepts
// and what happens when there are none.
type cardinality uint8

const (
	// optional fields keep their zero value when the element is absent.
	optional cardinality = iota
	// required fields fail with MissingMandatoryElementError when absent.
	required
	// requiredText fields additionally fail when the element has no text.
	requiredText
)

// scope locates the element being bound. Elements synthesised for an absent
// optional parent are lenient: their required children are not enforced.
type scope struct {
	path    string
	lenient bool
}

func (s scope) child(segment string) scope {
	return scope{path: s.path + "/" + segment, lenient: s.lenient}
}

// missing reports whether an absent child with cardinality card is an error.
func (s scope) missing(card cardinality) bool {
	return card != optional && !s.lenient
}

// rule binds one field of T from the element el.
type rule[T any] interface {
	bind(el *etree.Element, at scope, dst *T) error
}

// table is the static binding description of one entity type. Rules run in
// declaration order against the same element.
type table[T any] struct {
	rules []rule[T]
}

func (t *table[T]) bind(el *etree.Element, at scope) (T, error) {
	var v T
	for _, r := range t.rules {
		if err := r.bind(el, at, &v); err != nil {
			return v, err
		}
	}
	return v, nil
}

type attrRule[T any] struct {
	name  string
	field func(*T) *string
}

// attr binds the attribute name. An absent attribute yields "".
func attr[T any](name string, field func(*T) *string) rule[T] {
	return attrRule[T]{name: name, field: field}
}

func (r attrRule[T]) bind(el *etree.Element, _ scope, dst *T) error {
	*r.field(dst) = el.SelectAttrValue(r.name, "")
	return nil
}

type textRule[T any] struct {
	field func(*T) *string
}

// text binds the element's own character data. It may be combined with attr
// rules on the same table for mixed content elements.
func text[T any](field func(*T) *string) rule[T] {
	return textRule[T]{field: field}
}

func (r textRule[T]) bind(el *etree.Element, _ scope, dst *T) error {
	*r.field(dst) = textContent(el)
	return nil
}

type childTextRule[T any] struct {
	name  string
	card  cardinality
	field func(*T) *string
}

// childText binds the text of the first child element called name. The
// child must not contain elements of its own.
func childText[T any](name string, card cardinality, field func(*T) *string) rule[T] {
	return childTextRule[T]{name: name, card: card, field: field}
}

func (r childTextRule[T]) bind(el *etree.Element, at scope, dst *T) error {
	child := firstChild(el, r.name)
	if child == nil {
		if at.missing(r.card) {
			return &MissingMandatoryElementError{Path: at.path, Element: r.name}
		}
		return nil
	}
	if len(child.ChildElements()) > 0 {
		return &DeserializationError{
			Path:   at.child(r.name).path,
			Reason: "text element must not contain child elements",
		}
	}
	v := textContent(child)
	if v == "" && r.card == requiredText {
		return &MissingMandatoryElementError{Path: at.path, Element: r.name}
	}
	*r.field(dst) = v
	return nil
}

type nestedRule[T, C any] struct {
	name  string
	card  cardinality
	table *table[C]
	field func(*T) *C
}

// nested binds the first child element called name through table.
func nested[T, C any](name string, card cardinality, t *table[C], field func(*T) *C) rule[T] {
	return nestedRule[T, C]{name: name, card: card, table: t, field: field}
}

func (r nestedRule[T, C]) bind(el *etree.Element, at scope, dst *T) error {
	next := at.child(r.name)
	child := firstChild(el, r.name)
	if child == nil {
		if at.missing(r.card) {
			return &MissingMandatoryElementError{Path: at.path, Element: r.name}
		}
		// Bind an empty stand-in so lists come out empty rather than nil.
		child = etree.NewElement(r.name)
		next.lenient = true
	}
	v, err := r.table.bind(child, next)
	if err != nil {
		return err
	}
	*r.field(dst) = v
	return nil
}

type nestedListRule[T, C any] struct {
	name  string
	key   string
	table *table[C]
	field func(*T) *[]C
}

// nestedList binds every child element called name, in document order.
// When key is set, paths below an item use the item's key attribute instead
// of its position.
func nestedList[T, C any](name, key string, t *table[C], field func(*T) *[]C) rule[T] {
	return nestedListRule[T, C]{name: name, key: key, table: t, field: field}
}

func (r nestedListRule[T, C]) bind(el *etree.Element, at scope, dst *T) error {
	children := childrenNamed(el, r.name)
	out := make([]C, 0, len(children))
	for i, child := range children {
		v, err := r.table.bind(child, at.child(itemSegment(child, r.name, r.key, i)))
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*r.field(dst) = out
	return nil
}

type rawRule[T any] struct {
	name  string
	field func(*T) *domain.RawXML
}

// raw captures the first child element called name without interpreting it.
func raw[T any](name string, field func(*T) *domain.RawXML) rule[T] {
	return rawRule[T]{name: name, field: field}
}

func (r rawRule[T]) bind(el *etree.Element, at scope, dst *T) error {
	child := firstChild(el, r.name)
	if child == nil {
		return nil
	}
	v, err := capture(child, at)
	if err != nil {
		return err
	}
	*r.field(dst) = v
	return nil
}

type rawListRule[T any] struct {
	name  string
	field func(*T) *[]domain.RawXML
}

// rawList captures every child element called name, or every child element
// at all when name is empty.
func rawList[T any](name string, field func(*T) *[]domain.RawXML) rule[T] {
	return rawListRule[T]{name: name, field: field}
}

func (r rawListRule[T]) bind(el *etree.Element, at scope, dst *T) error {
	var children []*etree.Element
	if r.name == "" {
		children = el.ChildElements()
	} else {
		children = childrenNamed(el, r.name)
	}
	out := make([]domain.RawXML, 0, len(children))
	for _, child := range children {
		v, err := capture(child, at)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*r.field(dst) = out
	return nil
}

// textContent concatenates the direct character data of el. Whitespace-only
// runs between child elements are dropped and the result is trimmed.
func textContent(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		cd, ok := tok.(*etree.CharData)
		if !ok || (!cd.IsCData() && cd.IsWhitespace()) {
			continue
		}
		b.WriteString(cd.Data)
	}
	return strings.TrimSpace(b.String())
}

func capture(el *etree.Element, at scope) (domain.RawXML, error) {
	cp := el.Copy()
	inheritNamespaces(cp, el)
	doc := etree.NewDocumentWithRoot(cp)
	s, err := doc.WriteToString()
	if err != nil {
		return domain.RawXML{}, &DeserializationError{
			Path:   at.child(el.Tag).path,
			Reason: fmt.Sprintf("capture markup: %v", err),
		}
	}
	return domain.RawXML{Name: el.FullTag(), Markup: s}, nil
}

// inheritNamespaces declares on dst every namespace binding src inherits
// from its ancestors, so the captured subtree serializes on its own. The
// nearest declaration of a prefix wins.
func inheritNamespaces(dst, src *etree.Element) {
	for p := src.Parent(); p != nil; p = p.Parent() {
		for _, a := range p.Attr {
			if a.Space != "xmlns" && (a.Space != "" || a.Key != "xmlns") {
				continue
			}
			if !slices.ContainsFunc(dst.Attr, func(d etree.Attr) bool { return d.Space == a.Space && d.Key == a.Key }) {
				dst.CreateAttr(a.FullKey(), a.Value)
			}
		}
	}
}

func firstChild(el *etree.Element, name string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == name {
			return c
		}
	}
	return nil
}

func childrenNamed(el *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == name {
			out = append(out, c)
		}
	}
	return out
}

func itemSegment(el *etree.Element, name, key string, i int) string {
	if key != "" {
		switch v := el.SelectAttrValue(key, ""); {
		case v == "":
		case !strings.Contains(v, "'"):
			return fmt.Sprintf("%s[@%s='%s']", name, key, v)
		case !strings.Contains(v, `"`):
			return fmt.Sprintf(`%s[@%s="%s"]`, name, key, v)
		}
	}
	return fmt.Sprintf("%s[%d]", name, i+1)
}
