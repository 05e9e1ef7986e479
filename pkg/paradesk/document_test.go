package paradesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`<customer id="42"><Email>a@b.c</Email></customer>`))
	require.NoError(t, err)

	assert.Equal(t, "customer", doc.RootName())
	assert.Equal(t, "42", doc.RootAttr("id"))
	assert.Equal(t, int64(42), doc.Root().IntAttr("id"))
	assert.False(t, doc.IsEmpty())
}

func TestParseDocument_RejectsMalformedXML(t *testing.T) {
	doc, err := ParseDocument([]byte(`<customer><unclosed>`))

	assert.Error(t, err)
	assert.Nil(t, doc)
}

func TestNewDocument_SerializesEntities(t *testing.T) {
	doc, err := NewDocument(&Customer{
		FirstName: "Ada",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "customer", doc.RootName())
	assert.Contains(t, doc.String(), "<First_Name>Ada</First_Name>")
	assert.Contains(t, doc.String(), "<Email>ada@example.com</Email>")
}

func TestDocument_NilSafety(t *testing.T) {
	var doc *Document

	assert.True(t, doc.IsEmpty())
	assert.Nil(t, doc.Root())
	assert.Empty(t, doc.RootName())
	assert.Empty(t, doc.RootAttr("id"))
	assert.Nil(t, doc.Bytes())
	assert.ErrorIs(t, doc.Decode(&Customer{}), ErrNoDocument)
}

func TestElement_AttrHelpers(t *testing.T) {
	doc, err := ParseDocument([]byte(`<error code="412" message="nope"/>`))
	require.NoError(t, err)

	root := doc.Root()
	assert.True(t, root.HasAttr("code"))
	assert.False(t, root.HasAttr("missing"))
	assert.Equal(t, "nope", root.Attr("message"))
	assert.Empty(t, root.Attr("missing"))
	assert.Zero(t, root.IntAttr("message"))
}

func TestDocument_DecodeIntoEntity(t *testing.T) {
	doc, err := ParseDocument([]byte(
		`<customer id="8"><First_Name>Ada</First_Name><Custom_Field id="3" data-type="string">blue</Custom_Field></customer>`))
	require.NoError(t, err)

	var c Customer
	require.NoError(t, doc.Decode(&c))

	assert.Equal(t, int64(8), c.ID)
	assert.Equal(t, "Ada", c.FirstName)
	require.Len(t, c.CustomFields, 1)
	assert.Equal(t, int64(3), c.CustomFields[0].ID)
	assert.Equal(t, "blue", c.CustomFields[0].Value)
}
