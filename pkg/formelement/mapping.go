package formelement

import (
	"sort"
	"strconv"
	"strings"
)

// ErrorMapping splits a server error payload into element messages keyed by
// dotted element path and form level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors attaches payload messages to the elements of form. Keys may be
// dotted paths ("items.0.title") or JSON pointers ("/body/email"); leading
// request wrappers are skipped and the longest known element path wins.
// Messages for unknown paths are logged on the form itself.
func MapErrors(form *Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if form == nil || len(payload) == 0 {
		return mapping
	}

	elements := make(map[string]Element)
	collectElementPaths(form.Container, "", elements)

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawPath := range keys {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}
		mapped, formLevel := mapErrorPath(rawPath, elements)
		if formLevel {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], messages...)
	}

	for path, messages := range mapping.Fields {
		elements[path].AddMessages(messages...)
	}
	mapping.Form = normalizeMessages(mapping.Form)
	form.AddMessages(mapping.Form...)

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, elements map[string]Element) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}
	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	best := ""
	for _, variant := range [][]string{segments, dropWrapperSegments(segments)} {
		if path := longestMatchingPath(variant, elements); path != "" {
			if strings.Count(path, ".") > strings.Count(best, ".") || best == "" {
				best = path
			}
		}
	}
	if best == "" {
		return "", true
	}
	return best, false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func longestMatchingPath(segments []string, elements map[string]Element) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := elements[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func collectElementPaths(c *Container, prefix string, dest map[string]Element) {
	for _, el := range c.elements {
		path := joinPath(prefix, el.Name())
		dest[path] = el
		multi, ok := el.(*MultiInstanceElement)
		if !ok {
			continue
		}
		for _, index := range multi.Indexes() {
			collectElementPaths(multi.instances[index], joinPath(path, strconv.Itoa(index)), dest)
		}
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
