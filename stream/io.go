package stream

import "io"

// EventReader provides events from a source.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// SliceEventReader replays a fixed sequence of events. An EventEOF is
// reported once the slice is exhausted, then io.EOF.
type SliceEventReader struct {
	events []Event
	i      int
}

// NewSliceEventReader creates an event reader over events.
func NewSliceEventReader(events []Event) *SliceEventReader {
	return &SliceEventReader{events: events}
}

func (r *SliceEventReader) ReadEvent() (*Event, error) {
	switch {
	case r.i < len(r.events):
		ev := r.events[r.i]
		r.i++
		return &ev, nil
	case r.i == len(r.events):
		r.i++
		return &Event{Type: EventEOF}, nil
	default:
		return nil, io.EOF
	}
}

// ReadAll reads events until EventEOF, which is included in the result.
func ReadAll(r EventReader) ([]Event, error) {
	var res []Event
	for {
		ev, err := r.ReadEvent()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, *ev)
		if ev.Type == EventEOF {
			return res, nil
		}
	}
}
