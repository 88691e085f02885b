package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Attendee codec: the flat "Name <email>" representation used for order
// line-item metadata, kept compatible with the format historical orders
// were stored in. Structured attendee rows are the source of truth; this
// encoding exists for line-item display and for decoding legacy metadata.

// attendeeEntryPattern matches one "Name <email>" fragment.
var attendeeEntryPattern = regexp.MustCompile(`^(.*)<(.+)>$`)

const attendeeSeparator = ", "

// reservedAttendeeChars would make the encoding ambiguous and are rejected
// at encode time.
const reservedAttendeeChars = ",<>"

// AttendeeDecodeResult carries the decoded entries together with the number
// of malformed fragments that were skipped. Skipped fragments are never
// fatal, but the count must be surfaced to the admin view rather than
// silently dropped.
type AttendeeDecodeResult struct {
	Entries []AttendeeEntry
	Skipped int
}

// EncodeAttendees joins the entries as "Name <email>" separated by ", ".
// Names or emails containing ',' '<' or '>' are rejected with
// ErrReservedCharacter so that DecodeAttendees(EncodeAttendees(xs)) == xs.
func EncodeAttendees(attendees []AttendeeEntry) (string, error) {
	parts := make([]string, 0, len(attendees))
	for i, a := range attendees {
		if strings.ContainsAny(a.Name, reservedAttendeeChars) || strings.ContainsAny(a.Email, reservedAttendeeChars) {
			return "", fmt.Errorf("attendee %d %q: %w", i, a.Name, ErrReservedCharacter)
		}
		parts = append(parts, strings.TrimSpace(a.Name)+" <"+strings.TrimSpace(a.Email)+">")
	}
	return strings.Join(parts, attendeeSeparator), nil
}

// DecodeAttendees parses a flat attendee string back into entries.
// Fragments that do not match "Name <email>" are skipped and counted in
// the result; the order of well-formed entries is preserved.
func DecodeAttendees(raw string) AttendeeDecodeResult {
	var res AttendeeDecodeResult
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return res
	}
	for _, fragment := range strings.Split(raw, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		m := attendeeEntryPattern.FindStringSubmatch(fragment)
		if m == nil {
			res.Skipped++
			continue
		}
		name := strings.TrimSpace(m[1])
		email := strings.TrimSpace(m[2])
		if email == "" {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, AttendeeEntry{Name: name, Email: email})
	}
	return res
}
