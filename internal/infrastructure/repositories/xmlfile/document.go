package xmlfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/fileutil"
)

// Document is an XML file loaded for a parse-modify-save cycle. Reads go
// through the etree tree; writes go through SetAttr and SetText, which patch
// only the affected bytes of the original content on Save.
type Document struct {
	tree    *etree.Document
	path    string
	bom     bool
	content []byte
	spans   map[*etree.Element]*elementSpan
	edits   map[editKey]string
}

// elementSpan locates the editable parts of one element in the original content.
type elementSpan struct {
	attrs       map[string]byteRange // attribute name as written -> value between the quotes
	quotes      map[string]byte
	attrEnd     int       // offset where a new attribute is inserted
	text        byteRange // first character data after the start tag
	hasText     bool
	selfClosing bool
}

type byteRange struct {
	start, end int
}

type editKey struct {
	start, end int
	name       string
}

// Load reads and parses the XML file at path. Malformed content yields an
// error wrapping entities.ErrParseFailure.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, bom := fileutil.SplitBOM(data)
	tree := etree.NewDocument()
	if readErr := tree.ReadFromBytes(content); readErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrParseFailure, path, readErr)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("%w: %s: no root element", entities.ErrParseFailure, path)
	}

	spans, err := indexElements(content, tree.Root())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrParseFailure, path, err)
	}

	return &Document{
		tree:    tree,
		path:    path,
		bom:     bom,
		content: content,
		spans:   spans,
		edits:   make(map[editKey]string),
	}, nil
}

// Root returns the document element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// SetAttr sets an attribute value, adding the attribute when it is absent.
func (d *Document) SetAttr(el *etree.Element, key, value string) error {
	span, ok := d.spans[el]
	if !ok {
		return fmt.Errorf("element %s is not part of %s", el.Tag, d.path)
	}

	if attr := el.SelectAttr(key); attr != nil {
		name := attr.FullKey()
		if valueRange, found := span.attrs[name]; found {
			d.edits[editKey{start: valueRange.start, end: valueRange.end}] = escapeAttr(value, span.quotes[name])
			attr.Value = value
			return nil
		}
	}

	d.edits[editKey{start: span.attrEnd, end: span.attrEnd, name: key}] = fmt.Sprintf(` %s="%s"`, key, escapeAttr(value, '"'))
	el.CreateAttr(key, value)
	return nil
}

// SetText replaces the text of an element, keeping the whitespace around it.
func (d *Document) SetText(el *etree.Element, value string) error {
	span, ok := d.spans[el]
	if !ok {
		return fmt.Errorf("element %s is not part of %s", el.Tag, d.path)
	}
	if !span.hasText {
		return fmt.Errorf("element %s in %s has no text to replace", el.Tag, d.path)
	}

	raw := string(d.content[span.text.start:span.text.end])
	leading := len(raw) - len(strings.TrimLeft(raw, " \t\r\n"))
	trailing := len(raw) - len(strings.TrimRight(raw, " \t\r\n"))
	if leading == len(raw) {
		trailing = 0
	}
	start, end := span.text.start+leading, span.text.end-trailing
	d.edits[editKey{start: start, end: end}] = escapeText(value)
	el.SetText(raw[:leading] + value + raw[len(raw)-trailing:])
	return nil
}

// Save writes the pending edits back to the file, reporting whether the bytes
// on disk changed. Content outside the edited values is written back as read.
func (d *Document) Save() (bool, error) {
	if len(d.edits) == 0 {
		return false, nil
	}

	keys := make([]editKey, 0, len(d.edits))
	for key := range d.edits {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].start != keys[j].start {
			return keys[i].start < keys[j].start
		}
		return keys[i].name < keys[j].name
	})

	var buf bytes.Buffer
	buf.Grow(len(d.content))
	last := 0
	for _, key := range keys {
		buf.Write(d.content[last:key.start])
		buf.WriteString(d.edits[key])
		last = key.end
	}
	buf.Write(d.content[last:])

	return fileutil.WriteIfChanged(d.path, fileutil.JoinBOM(buf.Bytes(), d.bom))
}

// ElementsByTag returns every element below and including the root whose
// local name is tag, in document order. Namespace prefixes are ignored.
func (d *Document) ElementsByTag(tag string) []*etree.Element {
	var result []*etree.Element
	for _, el := range documentOrder(d.Root()) {
		if el.Tag == tag {
			result = append(result, el)
		}
	}
	return result
}

// AttrValue returns the value of an attribute, or "" when it is absent.
func AttrValue(el *etree.Element, key string) string {
	if attr := el.SelectAttr(key); attr != nil {
		return attr.Value
	}
	return ""
}

// TrimmedText returns the element text without surrounding whitespace.
func TrimmedText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

func documentOrder(root *etree.Element) []*etree.Element {
	var result []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		result = append(result, el)
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return result
}

// indexElements pairs every etree element with the byte ranges of its start
// tag attributes and leading text. Both parsers see elements in the same order.
func indexElements(content []byte, root *etree.Element) (map[*etree.Element]*elementSpan, error) {
	elements := documentOrder(root)
	spans := make(map[*etree.Element]*elementSpan, len(elements))

	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	next := 0
	var open *elementSpan // element whose first child token is still pending
	for {
		start := int(decoder.InputOffset())
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		end := int(decoder.InputOffset())

		switch token.(type) {
		case xml.StartElement:
			if next >= len(elements) {
				return nil, errors.New("element count mismatch")
			}
			span, scanErr := scanStartTag(content[start:end], start)
			if scanErr != nil {
				return nil, scanErr
			}
			spans[elements[next]] = span
			next++
			open = nil
			if !span.selfClosing {
				open = span
			}
			continue
		case xml.CharData:
			if open != nil {
				open.text = byteRange{start: start, end: end}
				open.hasText = true
			}
		case xml.EndElement:
			if open != nil {
				open.text = byteRange{start: start, end: start}
				open.hasText = true
			}
		}
		open = nil
	}

	if next != len(elements) {
		return nil, errors.New("element count mismatch")
	}
	return spans, nil
}

// scanStartTag reads the attributes of a raw start tag such as
// `<Reference Include="Lib, Version=1.0.0.0" />`. offset is the position of
// the tag in the whole content.
func scanStartTag(tag []byte, offset int) (*elementSpan, error) {
	span := &elementSpan{attrs: make(map[string]byteRange), quotes: make(map[string]byte)}

	i := 1
	for i < len(tag) && !isSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}
	span.attrEnd = offset + i

	for i < len(tag) {
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] == '/' || tag[i] == '>' {
			break
		}

		nameStart := i
		for i < len(tag) && tag[i] != '=' && !isSpace(tag[i]) {
			i++
		}
		name := string(tag[nameStart:i])
		for i < len(tag) && (isSpace(tag[i]) || tag[i] == '=') {
			i++
		}
		if i >= len(tag) || (tag[i] != '"' && tag[i] != '\'') {
			return nil, fmt.Errorf("unquoted attribute %s", name)
		}

		quote := tag[i]
		i++
		valueStart := i
		for i < len(tag) && tag[i] != quote {
			i++
		}
		if i >= len(tag) {
			return nil, fmt.Errorf("unterminated attribute %s", name)
		}
		span.attrs[name] = byteRange{start: offset + valueStart, end: offset + i}
		span.quotes[name] = quote
		i++
		span.attrEnd = offset + i
	}

	span.selfClosing = bytes.HasSuffix(bytes.TrimRight(tag, " \t\r\n"), []byte("/>"))
	return span, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func escapeAttr(value string, quote byte) string {
	value = strings.NewReplacer("&", "&amp;", "<", "&lt;").Replace(value)
	if quote == '\'' {
		return strings.ReplaceAll(value, "'", "&apos;")
	}
	return strings.ReplaceAll(value, `"`, "&quot;")
}

func escapeText(value string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(value)
}
