// Package xliff turns a publishing manifest into an XLIFF 1.2 translation
// file: one trans-unit per scalar value, one group of trans-units per list.
//
// Unit and group ids are positional ("tu1", "grp1", ...). They are dense and
// increasing within one build but are not derived from content, so editing
// one key can renumber the units after it.
package xliff

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"

	"github.com/specialistvlad/voxgrid/internal/manifest"
)

// ResourceFile is the original-file name every generated document declares.
const ResourceFile = "agent.proto"

// Namespace is the XLIFF 1.2 document namespace.
const Namespace = "urn:oasis:names:tc:xliff:document:1.2"

// Counter numbers units and groups. One Counter is shared by every Build
// call of a single document.
type Counter struct {
	units  int
	groups int
}

// NextUnit returns the next unit id.
func (c *Counter) NextUnit() string {
	c.units++
	return "tu" + strconv.Itoa(c.units)
}

// NextGroup returns the next group id.
func (c *Counter) NextGroup() string {
	c.groups++
	return "grp" + strconv.Itoa(c.groups)
}

// Text is a source or target element.
type Text struct {
	Lang  string `xml:"xml:lang,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Unit is a trans-unit element.
type Unit struct {
	XMLName xml.Name `xml:"trans-unit"`
	ID      string   `xml:"id,attr"`
	ResName string   `xml:"resname,attr"`
	Source  Text     `xml:"source"`
	Target  Text     `xml:"target"`
}

// Group bundles the units produced from one list value.
type Group struct {
	XMLName xml.Name `xml:"group"`
	ID      string   `xml:"id,attr"`
	ResName string   `xml:"resname,attr"`
	Units   []Unit   `xml:"trans-unit"`
}

// Body holds units and groups in manifest walk order.
type Body struct {
	Items []any
}

// MarshalXML writes the items in order, each under its own element name.
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range b.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Build walks m in key order and returns the unit tree. lang tags every
// source and target. Nested maps are flattened with dotted keys.
func Build(m manifest.Manifest, lang string, c *Counter) Body {
	var body Body
	walk(&body, map[string]any(m), "", lang, c)
	return body
}

func walk(body *Body, m map[string]any, prefix, lang string, c *Counter) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case map[string]any:
			walk(body, v, key, lang, c)
		case manifest.Manifest:
			walk(body, v, key, lang, c)
		case []any:
			g := Group{ID: c.NextGroup(), ResName: key}
			for i, el := range v {
				g.Units = append(g.Units, unit(c, key+"."+strconv.Itoa(i+1), el, lang))
			}
			body.Items = append(body.Items, g)
		default:
			body.Items = append(body.Items, unit(c, key, v, lang))
		}
	}
}

func unit(c *Counter, resname string, v any, lang string) Unit {
	text := scalarText(v)
	return Unit{
		ID:      c.NextUnit(),
		ResName: resname,
		Source:  Text{Lang: lang, Value: text},
		Target:  Text{Lang: lang, Value: text},
	}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// Document is the whole translation file.
type Document struct {
	SourceLanguage string
	TargetLanguage string
	Body           Body
}

type xliffRoot struct {
	XMLName xml.Name  `xml:"xliff"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	File    xliffFile `xml:"file"`
}

type xliffFile struct {
	Original       string `xml:"original,attr"`
	Datatype       string `xml:"datatype,attr"`
	SourceLanguage string `xml:"source-language,attr"`
	TargetLanguage string `xml:"target-language,attr"`
	Body           Body   `xml:"body"`
}

// Marshal serializes d as an indented XLIFF 1.2 document with an XML
// declaration.
func Marshal(d Document) ([]byte, error) {
	root := xliffRoot{
		XMLNS:   Namespace,
		Version: "1.2",
		File: xliffFile{
			Original:       ResourceFile,
			Datatype:       "plaintext",
			SourceLanguage: d.SourceLanguage,
			TargetLanguage: d.TargetLanguage,
			Body:           d.Body,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode xliff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode xliff: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Translate builds and serializes the translation file for one locale's
// manifest, with a fresh Counter.
func Translate(m manifest.Manifest, locale string) ([]byte, error) {
	var c Counter
	return Marshal(Document{
		SourceLanguage: locale,
		TargetLanguage: locale,
		Body:           Build(m, locale, &c),
	})
}
