package calendar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/borgmon/slotcal/pkg/models"
)

func TestWriteICS(t *testing.T) {
	key := models.DayKey{Year: 2025, Month: 0, Day: 15}
	byDay := map[models.DayKey][]models.Booking{
		key: {
			{ID: "b-1", PersonName: "Alice", Color: "#ff0000", StartTime: "09:00", EndTime: "10:00"},
		},
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, byDay); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	body := buf.String()

	required := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//borgmon//SlotCal//EN",
		"BEGIN:VEVENT",
		"UID:b-1",
		"SUMMARY:Alice",
		"COLOR:#ff0000",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range required {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing %q", field)
		}
	}

	if !strings.Contains(body, "DTSTART") {
		t.Error("ICS output missing DTSTART")
	}
	if !strings.Contains(body, "20250115") {
		t.Error("DTSTART should fall on 2025-01-15")
	}
}

func TestWriteICSAllDayFallback(t *testing.T) {
	key := models.DayKey{Year: 2025, Month: 2, Day: 3}
	byDay := map[models.DayKey][]models.Booking{
		key: {
			{ID: "b-2", PersonName: "Bob", StartTime: "whenever", EndTime: "later"},
		},
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, byDay); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250303") {
		t.Errorf("unparseable times should produce an all-day DTSTART, got:\n%s", body)
	}
	if strings.Contains(body, "DTEND") {
		t.Error("all-day fallback should not carry a DTEND")
	}
}

func TestParseICSRoundTrip(t *testing.T) {
	key := models.DayKey{Year: 2025, Month: 0, Day: 15}
	byDay := map[models.DayKey][]models.Booking{
		key: {
			{ID: "b-1", PersonName: "Alice", Color: "#ff0000", StartTime: "09:00", EndTime: "10:00"},
			{ID: "b-2", PersonName: "Bob", Color: "#00ff00", StartTime: "11:30", EndTime: "12:00"},
		},
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, byDay); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}

	parsed, err := ParseICS(&buf)
	if err != nil {
		t.Fatalf("ParseICS failed: %v", err)
	}

	got, ok := parsed[key]
	if !ok {
		t.Fatalf("parsed calendar has no bookings for %s", key)
	}
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}

	for i, want := range byDay[key] {
		if got[i].PersonName != want.PersonName {
			t.Errorf("booking %d name = %q, want %q", i, got[i].PersonName, want.PersonName)
		}
		if got[i].Color != want.Color {
			t.Errorf("booking %d color = %q, want %q", i, got[i].Color, want.Color)
		}
		if got[i].StartTime != want.StartTime {
			t.Errorf("booking %d start = %q, want %q", i, got[i].StartTime, want.StartTime)
		}
		if got[i].EndTime != want.EndTime {
			t.Errorf("booking %d end = %q, want %q", i, got[i].EndTime, want.EndTime)
		}
	}
}

func TestParseICSIgnoresNonEvents(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VTIMEZONE",
		"TZID:Europe/Berlin",
		"END:VTIMEZONE",
		"BEGIN:VEVENT",
		"UID:x-1",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Carol",
		"DTSTART:20250210T140000",
		"DTEND:20250210T150000",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	parsed, err := ParseICS(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseICS failed: %v", err)
	}

	key := models.DayKey{Year: 2025, Month: 1, Day: 10}
	got, ok := parsed[key]
	if !ok || len(got) != 1 {
		t.Fatalf("expected exactly one booking on %s, got %v", key, parsed)
	}
	if got[0].PersonName != "Carol" || got[0].StartTime != "14:00" || got[0].EndTime != "15:00" {
		t.Errorf("unexpected booking: %+v", got[0])
	}
}
