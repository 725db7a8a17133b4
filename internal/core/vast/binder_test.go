package vast

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vast-core/internal/core/domain"
)

type sample struct {
	Name  string
	Kind  string
	Body  string
	Items []domain.Tracking
	Raw   domain.RawXML
	Any   []domain.RawXML
}

var sampleTable = table[sample]{rules: []rule[sample]{
	attr("kind", func(s *sample) *string { return &s.Kind }),
	childText("Name", required, func(s *sample) *string { return &s.Name }),
	childText("Body", optional, func(s *sample) *string { return &s.Body }),
	nestedList("Tracking", "event", &trackingTable, func(s *sample) *[]domain.Tracking { return &s.Items }),
	raw("Opaque", func(s *sample) *domain.RawXML { return &s.Raw }),
	rawList("Extra", func(s *sample) *[]domain.RawXML { return &s.Any }),
}}

func element(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	return doc.Root()
}

func TestTableBind(t *testing.T) {
	el := element(t, `<S kind="k">
		<Tracking event="a">u1</Tracking>
		<Name>n</Name>
		<Extra>1</Extra>
		<Tracking>u2</Tracking>
		<Opaque x="1"><Deep>v &amp; w</Deep></Opaque>
		<Extra>2</Extra>
	</S>`)

	got, err := sampleTable.bind(el, scope{path: "S"})
	require.NoError(t, err)

	assert.Equal(t, "k", got.Kind)
	assert.Equal(t, "n", got.Name)
	assert.Equal(t, "", got.Body)
	assert.Equal(t, []domain.Tracking{{Event: "a", URL: "u1"}, {URL: "u2"}}, got.Items)
	assert.Equal(t, domain.RawXML{Name: "Opaque", Markup: `<Opaque x="1"><Deep>v &amp; w</Deep></Opaque>`}, got.Raw)
	assert.Equal(t, []domain.RawXML{
		{Name: "Extra", Markup: "<Extra>1</Extra>"},
		{Name: "Extra", Markup: "<Extra>2</Extra>"},
	}, got.Any)
}

func TestTableBindEmptyLists(t *testing.T) {
	got, err := sampleTable.bind(element(t, `<S><Name>n</Name></S>`), scope{path: "S"})
	require.NoError(t, err)

	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.NotNil(t, got.Any)
	assert.True(t, got.Raw.IsZero())
}

func TestTableBindRequired(t *testing.T) {
	_, err := sampleTable.bind(element(t, `<S/>`), scope{path: "S"})
	var missing *MissingMandatoryElementError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "S", missing.Path)
	assert.Equal(t, "Name", missing.Element)

	// Stand-ins for absent optional parents do not enforce required children.
	_, err = sampleTable.bind(etree.NewElement("S"), scope{path: "S", lenient: true})
	assert.NoError(t, err)
}

func TestTableBindListItemPath(t *testing.T) {
	outer := table[[]sample]{rules: []rule[[]sample]{
		nestedList("S", "kind", &sampleTable, func(l *[]sample) *[]sample { return l }),
	}}
	_, err := outer.bind(element(t, `<Root><S kind="x"><Name>a</Name></S><S/></Root>`), scope{path: "Root"})
	var missing *MissingMandatoryElementError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Root/S[2]", missing.Path)
}

func TestTableBindListItemPathQuoting(t *testing.T) {
	outer := table[[]sample]{rules: []rule[[]sample]{
		nestedList("S", "kind", &sampleTable, func(l *[]sample) *[]sample { return l }),
	}}
	tests := []struct {
		input string
		path  string
	}{
		{`<Root><S kind="plain"/></Root>`, `Root/S[@kind='plain']`},
		{`<Root><S kind="a'b"/></Root>`, `Root/S[@kind="a'b"]`},
		{`<Root><S kind="it's &quot;x&quot;"/></Root>`, `Root/S[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := outer.bind(element(t, tt.input), scope{path: "Root"})
			var missing *MissingMandatoryElementError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.path, missing.Path)
		})
	}
}

func TestTextContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `<a>x</a>`, "x"},
		{"trimmed", "<a>\n  x  \n</a>", "x"},
		{"entities", `<a>a&amp;b&lt;c</a>`, "a&b<c"},
		{"cdata", `<a><![CDATA[ <b> ]]></a>`, "<b>"},
		{"around child", `<a> x <c/> y </a>`, "x  y"},
		{"whitespace only around child", "<a>\n <c/>\n</a>", ""},
		{"empty", `<a/>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textContent(element(t, tt.input)))
		})
	}
}
