package ical

import (
	"net/url"
	"strings"
	"time"
)

const (
	googleCalendarURL  = "https://www.google.com/calendar/render"
	outlookCalendarURL = "https://outlook.live.com/calendar/0/deeplink/compose"
	outlookTimeLayout  = "2006-01-02T15:04:05.000Z"
)

// GoogleURL builds an "add event" template link.
func GoogleURL(e Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Summary)
	q.Set("dates", FormatTime(e.Start)+"/"+FormatTime(e.End))
	q.Set("details", e.Description)
	q.Set("location", "")
	q.Set("sf", "true")
	q.Set("output", "xml")
	return googleCalendarURL + "?" + encode(q)
}

func OutlookURL(e Event) string {
	q := url.Values{}
	q.Set("path", "/calendar/action/compose")
	q.Set("rru", "addevent")
	q.Set("subject", e.Summary)
	q.Set("startdt", e.Start.UTC().Format(outlookTimeLayout))
	q.Set("enddt", e.End.UTC().Format(outlookTimeLayout))
	q.Set("body", e.Description)
	return outlookCalendarURL + "?" + encode(q)
}

// SingleEvent wraps one event in a minimal calendar suitable for a file download.
func SingleEvent(prodID string, e Event, now time.Time) string {
	if e.Stamp.IsZero() {
		e.Stamp = now
	}
	return Calendar{ProdID: prodID, Events: []Event{e}}.Render()
}

// encode keeps spaces as %20 so the links match what browsers produce.
func encode(q url.Values) string {
	return strings.ReplaceAll(q.Encode(), "+", "%20")
}
