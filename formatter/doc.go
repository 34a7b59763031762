// Package formatter renders a record into its single-line text form.
//
// The line layout is fixed:
//
//	<timestamp>\t<[LEVEL]\t...><location padded to LocationWidth><message padded to ContentWidth>\n
//
// Every section is driven by one config.Config snapshot handed in by
// the caller; the formatter never reads shared state and performs no
// I/O, so the same snapshot always yields the same bytes for the same
// record.
//
// The timestamp layout depends only on seven toggles, so all possible
// layouts are pre-computed at init and a record picks its layout with a
// single table lookup before calling time.AppendFormat. Location and
// message widths are measured in runes; truncation cuts at a rune
// boundary without regard for display width or word boundaries.
//
// LineFormatter uses a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
