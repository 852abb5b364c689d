package formelement

import "fmt"

// MessageLog is an append-only log of human readable messages attached to an
// element or form. The zero value is ready to use.
type MessageLog struct {
	items []string
}

// AddMessages appends messages verbatim.
func (m *MessageLog) AddMessages(messages ...string) {
	m.items = append(m.items, messages...)
}

// AddMessage appends a formatted message.
func (m *MessageLog) AddMessage(format string, args ...any) {
	m.items = append(m.items, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the logged messages.
func (m *MessageLog) Messages() []string {
	return append([]string(nil), m.items...)
}

// HasMessages reports whether anything was logged.
func (m *MessageLog) HasMessages() bool {
	return len(m.items) > 0
}

// ClearMessages empties the log.
func (m *MessageLog) ClearMessages() {
	m.items = nil
}
