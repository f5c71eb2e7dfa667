package stream

import "fmt"

// Event represents a structural event from the decoder.
type Event struct {
	Type EventType

	// Name is set for EventStart, EventEnd and EventEmpty.
	Name string
	// Attrs is set for EventStart and EventEmpty, in document order.
	Attrs []Attr
	// Text is set for EventText, with entities already resolved.
	Text string

	// Offset is the byte offset of the event in the original input.
	Offset int64
}

// Attr is an attribute of a start or empty element event.
type Attr struct {
	Name  string
	Value string
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventStart EventType = iota
	EventEnd
	EventEmpty
	EventText
	EventEOF
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "Start"
	case EventEnd:
		return "End"
	case EventEmpty:
		return "Empty"
	case EventText:
		return "Text"
	case EventEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"Start": EventStart,
		"End":   EventEnd,
		"Empty": EventEmpty,
		"Text":  EventText,
		"EOF":   EventEOF,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}

func (e *Event) String() string {
	switch e.Type {
	case EventStart, EventEmpty:
		return fmt.Sprintf("%s(%s %v)@%d", e.Type, e.Name, e.Attrs, e.Offset)
	case EventEnd:
		return fmt.Sprintf("%s(%s)@%d", e.Type, e.Name, e.Offset)
	case EventText:
		return fmt.Sprintf("%s(%q)@%d", e.Type, e.Text, e.Offset)
	default:
		return fmt.Sprintf("%s@%d", e.Type, e.Offset)
	}
}
