package html

import (
	"fmt"
	"strings"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Renderer is implemented by everything that produces markup.
type Renderer interface {
	Render() (string, error)
}

// Text is element content that is escaped when rendered.
type Text string

// Render implements Renderer.
func (t Text) Render() (string, error) {
	return Escape(string(t)), nil
}

// Element is a markup node made of a tag, its attributes and content.
type Element struct {
	tag        string
	attributes *Attributes
	content    []Renderer
}

// NewElement creates an element with the given tag and attributes.
func NewElement(tag string, attrs ...*Attribute) *Element {
	return &Element{tag: tag, attributes: NewAttributes(attrs...)}
}

// Tag returns the tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Attributes returns the element's attribute collection.
func (e *Element) Attributes() *Attributes {
	if e.attributes == nil {
		e.attributes = &Attributes{}
	}
	return e.attributes
}

// Add appends content. Nil entries are skipped.
func (e *Element) Add(content ...Renderer) *Element {
	for _, item := range content {
		if item != nil {
			e.content = append(e.content, item)
		}
	}
	return e
}

// SetContent replaces the content.
func (e *Element) SetContent(content ...Renderer) *Element {
	e.content = nil
	return e.Add(content...)
}

// Content returns the element content.
func (e *Element) Content() []Renderer {
	return append([]Renderer(nil), e.content...)
}

// IsVoid reports whether the tag has no closing tag.
func (e *Element) IsVoid() bool {
	return IsVoidTag(e.tag)
}

// Render implements Renderer.
func (e *Element) Render() (string, error) {
	return RenderTag(e.tag, e.Attributes(), e.content...)
}

// IsVoidTag reports whether tag is an HTML void element.
func IsVoidTag(tag string) bool {
	_, ok := voidElements[strings.ToLower(tag)]
	return ok
}

// RenderTag renders tag with attrs and content. Void tags never render
// content or a closing tag.
func RenderTag(tag string, attrs *Attributes, content ...Renderer) (string, error) {
	if tag == "" {
		return "", fmt.Errorf("%w: tag name is required", ErrInvalidInput)
	}
	rendered := ""
	if attrs != nil {
		var err error
		if rendered, err = attrs.Render(); err != nil {
			return "", fmt.Errorf("html: render <%s> attributes: %w", tag, err)
		}
	}

	var builder strings.Builder
	builder.WriteByte('<')
	builder.WriteString(tag)
	builder.WriteString(rendered)
	builder.WriteByte('>')
	if IsVoidTag(tag) {
		return builder.String(), nil
	}
	for _, item := range content {
		out, err := item.Render()
		if err != nil {
			return "", fmt.Errorf("html: render <%s> content: %w", tag, err)
		}
		builder.WriteString(out)
	}
	builder.WriteString("</")
	builder.WriteString(tag)
	builder.WriteByte('>')
	return builder.String(), nil
}
