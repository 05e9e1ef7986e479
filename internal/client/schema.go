package client

import (
	"context"
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// The schema endpoint reports phone, email, and URL custom fields as plain
// strings. The only way to tell them apart is to post a probe object with
// values those validators reject and read the field names out of the
// rejection messages. The probe object is deleted with purge afterwards.

// probeValue fails the US phone, international phone, email, and URL
// validators alike while passing plain string fields.
const probeValue = "aaa"

type probeField struct {
	ID    int64  `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type probeObject struct {
	XMLName xml.Name
	Fields  []probeField `xml:"Custom_Field"`
}

var fieldTypeHints = []struct {
	pattern  *regexp.Regexp
	dataType paradesk.CustomFieldDataType
}{
	{regexp.MustCompile(`(?i)invalid us phone.*?\[([^\]]+)\]`), paradesk.FieldTypeUsPhone},
	{regexp.MustCompile(`(?i)invalid international phone.*?\[([^\]]+)\]`), paradesk.FieldTypeInternationalPhone},
	{regexp.MustCompile(`(?i)invalid email.*?\[([^\]]+)\]`), paradesk.FieldTypeEmail},
	{regexp.MustCompile(`(?i)invalid url.*?\[([^\]]+)\]`), paradesk.FieldTypeURL},
}

// probeCustomFieldTypes refines string-typed custom fields by validation
// probing. Fields the server does not complain about keep their reported
// type; if the probe unexpectedly creates an object, it is purged.
func (c *client) probeCustomFieldTypes(ctx context.Context, module paradesk.Module, fields []paradesk.CustomField) []paradesk.CustomField {
	probe := probeObject{
		XMLName: xml.Name{Local: rootElementName(module)},
	}

	for _, field := range fields {
		if field.DataType == paradesk.FieldTypeString {
			probe.Fields = append(probe.Fields, probeField{ID: field.ID, Value: probeValue})
		}
	}

	if len(probe.Fields) == 0 {
		return fields
	}

	doc, err := paradesk.NewDocument(&probe)
	if err != nil {
		return fields
	}

	result := c.disp.CreateUpdate(ctx, module, 0, doc, nil)

	if result.ObjectID != 0 {
		c.disp.Delete(ctx, module, result.ObjectID, true)
	}

	if !result.HasException {
		return fields
	}

	return applyFieldTypeHints(fields, result.ExceptionDetails)
}

// applyFieldTypeHints matches validation messages against the known
// subtype patterns and rewrites the data type of the named fields. The
// server sometimes appends ", Short Name ..." inside the bracketed field
// reference; that suffix is cut before the name is extracted.
func applyFieldTypeHints(fields []paradesk.CustomField, details string) []paradesk.CustomField {
	details = strings.ReplaceAll(details, ", Short Name", "]")

	for _, hint := range fieldTypeHints {
		for _, match := range hint.pattern.FindAllStringSubmatch(details, -1) {
			name := strings.TrimSpace(match[1])

			for i := range fields {
				if strings.EqualFold(fields[i].DisplayName, name) {
					fields[i].DataType = hint.dataType
				}
			}
		}
	}

	return fields
}

// rootElementName maps a module to the root element of its documents,
// which the vendor spells in lower camel case.
func rootElementName(module paradesk.Module) string {
	resource := module.Resource()

	return strings.ToLower(resource[:1]) + resource[1:]
}
