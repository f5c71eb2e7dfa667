// Package stream provides structural event-based decoding of XML documents.
//
// A Decoder turns an in-memory XML document into a flat sequence of events
// (element start, element end, self-closing element, text, end of input).
// It sits on top of the encoding/xml tokenizer and adds the two things the
// tokenizer does not report directly:
//
//   - self-closing elements (<a/>) are reported as a single EventEmpty,
//     distinct from <a></a> which is EventStart followed by EventEnd
//   - entity references other than the five predefined ones (lt, gt, amp,
//     apos, quot), numeric character references, and any entities given
//     WithEntities are dropped instead of failing the whole document
//
// Comments, processing instructions and directives produce no events.
// Namespaces are not resolved: a prefixed name is reported as "prefix:local".
//
// # Example: Decoding
//
//	dec := stream.NewDecoder([]byte(`<r id="7">hi</r>`))
//	event, _ := dec.ReadEvent()  // EventStart r with Attrs [{id 7}]
//	event, _ := dec.ReadEvent()  // EventText "hi"
//	event, _ := dec.ReadEvent()  // EventEnd r
//	event, _ := dec.ReadEvent()  // EventEOF
//	_, err := dec.ReadEvent()    // io.EOF
//
// Text events are not merged: a consumer that wants the full text of an
// element must accumulate consecutive EventText events.
package stream
