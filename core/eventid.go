package core

import (
	"strconv"
	"strings"
)

// EventID identifies the kind of event an entry describes. Texts and Codes
// are both ordered from the most general to the most specific element, for
// example Texts ["Bridge", "Orders", "Started"] with Codes [-10, 7].
type EventID struct {
	Texts []string
	Codes []int
}

// NewEventID builds an EventID from the given chains.
func NewEventID(texts []string, codes []int) EventID {
	return EventID{Texts: texts, Codes: codes}
}

// IsZero reports whether neither chain carries an element.
func (id EventID) IsZero() bool {
	return len(id.Texts) == 0 && len(id.Codes) == 0
}

// Clone returns a deep copy of id.
func (id EventID) Clone() EventID {
	return EventID{
		Texts: append([]string(nil), id.Texts...),
		Codes: append([]int(nil), id.Codes...),
	}
}

// Text joins the text chain with dots.
func (id EventID) Text() string {
	return strings.Join(id.Texts, ".")
}

// Code joins the numeric chain with dots.
func (id EventID) Code() string {
	var b strings.Builder
	for i, c := range id.Codes {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// String returns "text#code", omitting an empty half.
func (id EventID) String() string {
	text, code := id.Text(), id.Code()
	switch {
	case code == "":
		return text
	case text == "":
		return "#" + code
	default:
		return text + "#" + code
	}
}
