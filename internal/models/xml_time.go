package models

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts accepted on decode. Legacy files carry local timestamps
// without a zone offset; new writes always use RFC 3339.
var xmlTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// XMLTime wraps time.Time so user files written by earlier revisions of the
// application can still be decoded without failing the whole collection.
type XMLTime struct {
	time.Time
}

// NewXMLTime builds an XMLTime from a time.Time.
func NewXMLTime(t time.Time) XMLTime {
	return XMLTime{Time: t}
}

// UnmarshalXML accepts any of the known timestamp layouts. An empty element
// yields the zero time.
func (t *XMLTime) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range xmlTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as a timestamp", raw)
}

// MarshalXML always writes RFC 3339, keeping new writes consistent even when
// the loaded file used a legacy layout.
func (t XMLTime) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(t.Format(time.RFC3339), start)
}
