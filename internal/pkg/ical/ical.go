// Package ical renders the small subset of RFC 5545 used for reservation exports.
package ical

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	TimeLayout = "20060102T150405Z"
	crlf       = "\r\n"
	// lines longer than this many octets are folded
	maxLineOctets = 75

	DefaultDurationMinutes = 60
)

type EventStatus string

const (
	StatusConfirmed EventStatus = "CONFIRMED"
	StatusTentative EventStatus = "TENTATIVE"
)

type Event struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Status      EventStatus
}

type Calendar struct {
	ProdID   string
	Name     string
	TimeZone string
	Method   string
	Events   []Event
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// DurationMinutes reads the leading integer of an offer duration such as "90" or "90 min".
// Empty, non-numeric or non-positive input yields the default.
func DurationMinutes(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' || digits == 6 {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 || n <= 0 {
		return DefaultDurationMinutes
	}
	return n
}

func EndFor(start time.Time, duration string) time.Time {
	return start.Add(time.Duration(DurationMinutes(duration)) * time.Minute)
}

// Render joins content lines with CRLF. Properties with empty values are omitted
// except for the mandatory ones.
func (c Calendar) Render() string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
	}
	if c.ProdID != "" {
		lines = append(lines, "PRODID:"+c.ProdID)
	}
	lines = append(lines, "CALSCALE:GREGORIAN")
	if c.Method != "" {
		lines = append(lines, "METHOD:"+c.Method)
	}
	if c.Name != "" {
		lines = append(lines, "X-WR-CALNAME:"+EscapeText(c.Name))
	}
	if c.TimeZone != "" {
		lines = append(lines, "X-WR-TIMEZONE:"+c.TimeZone)
	}

	for _, e := range c.Events {
		lines = append(lines, e.lines()...)
	}
	lines = append(lines, "END:VCALENDAR")

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(crlf)
		}
		sb.WriteString(fold(l))
	}
	return sb.String()
}

func (e Event) lines() []string {
	out := []string{"BEGIN:VEVENT"}
	if e.UID != "" {
		out = append(out, "UID:"+e.UID)
	}
	if !e.Stamp.IsZero() {
		out = append(out, "DTSTAMP:"+FormatTime(e.Stamp))
	}
	out = append(out,
		"DTSTART:"+FormatTime(e.Start),
		"DTEND:"+FormatTime(e.End),
		"SUMMARY:"+EscapeText(e.Summary),
		"DESCRIPTION:"+EscapeText(e.Description),
	)
	if e.Status != "" {
		out = append(out, "STATUS:"+string(e.Status))
	}
	return append(out, "END:VEVENT")
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// EscapeText escapes a TEXT value; newlines become the two characters `\n`.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

func fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}
	var sb strings.Builder
	width := 0
	limit := maxLineOctets
	for len(line) > 0 {
		r, size := utf8.DecodeRuneInString(line)
		if width+size > limit {
			sb.WriteString(crlf + " ")
			width = 0
			// continuation lines start with a space that counts toward the limit
			limit = maxLineOctets - 1
		}
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(line[0])
		} else {
			sb.WriteString(line[:size])
		}
		width += size
		line = line[size:]
	}
	return sb.String()
}
