package calendar

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/borgmon/slotcal/pkg/models"
)

const prodID = "-//borgmon//SlotCal//EN"

// timeOfDayFormats are tried in order when interpreting a booking's free-form
// time strings for export.
var timeOfDayFormats = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
}

// EncodeICS renders the given bookings as a VCALENDAR with one VEVENT per
// booking. Bookings whose time strings cannot be interpreted become all-day
// events rather than failing the export.
func EncodeICS(byDay map[models.DayKey][]models.Booking) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	keys := make([]models.DayKey, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Date().Before(keys[j].Date())
	})

	now := time.Now()
	for _, key := range keys {
		for _, booking := range byDay[key] {
			event := ical.NewEvent()

			uid := booking.ID
			if uid == "" {
				uid = uuid.New().String()
			}
			event.Props.SetText(ical.PropUID, uid)
			event.Props.SetDateTime(ical.PropDateTimeStamp, now)
			event.Props.SetText(ical.PropSummary, booking.PersonName)
			if booking.Color != "" {
				event.Props.SetText(ical.PropColor, booking.Color)
			}

			start, startErr := timeOnDay(key, booking.StartTime)
			end, endErr := timeOnDay(key, booking.EndTime)
			if startErr != nil || endErr != nil {
				// All-day placement for unparseable times
				startProp := ical.NewProp(ical.PropDateTimeStart)
				startProp.SetValueType(ical.ValueDate)
				startProp.Value = key.Date().Format("20060102")
				event.Props.Set(startProp)
			} else {
				event.Props.SetDateTime(ical.PropDateTimeStart, start)
				event.Props.SetDateTime(ical.PropDateTimeEnd, end)
			}

			cal.Children = append(cal.Children, event.Component)
		}
	}

	return cal
}

// WriteICS encodes the bookings to w in iCalendar format.
func WriteICS(w io.Writer, byDay map[models.DayKey][]models.Booking) error {
	if err := ical.NewEncoder(w).Encode(EncodeICS(byDay)); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ParseICS reads VEVENTs from r and groups them into bookings by day. Events
// without a parseable start date are skipped; a malformed stream is an error.
func ParseICS(r io.Reader) (map[models.DayKey][]models.Booking, error) {
	decoder := ical.NewDecoder(r)
	byDay := make(map[models.DayKey][]models.Booking)

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			booking, key, ok := parseEventComponent(comp)
			if !ok {
				continue
			}
			byDay[key] = append(byDay[key], booking)
		}
	}

	return byDay, nil
}

func parseEventComponent(comp *ical.Component) (models.Booking, models.DayKey, bool) {
	booking := models.Booking{}

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		booking.ID = prop.Value
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		booking.PersonName = prop.Value
	}
	if prop := comp.Props.Get(ical.PropColor); prop != nil {
		booking.Color = prop.Value
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return booking, models.DayKey{}, false
	}
	start, err := parseDateTimeProp(startProp)
	if err != nil {
		return booking, models.DayKey{}, false
	}

	key := models.DayKeyFromDate(start)

	// All-day events carry no time-of-day; keep the time strings empty
	if startProp.ValueType() != ical.ValueDate {
		booking.StartTime = start.Format("15:04")
		if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
			if end, err := parseDateTimeProp(endProp); err == nil {
				booking.EndTime = end.Format("15:04")
			}
		}
	}

	return booking, key, true
}

// parseDateTimeProp attempts the library's DateTime decoding first, then falls
// back to the common raw layouts seen in exported files.
func parseDateTimeProp(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		"20060102",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

// timeOnDay combines a day key with a free-form time-of-day string.
func timeOnDay(key models.DayKey, value string) (time.Time, error) {
	for _, format := range timeOfDayFormats {
		if t, err := time.Parse(format, value); err == nil {
			day := key.Date()
			return time.Date(day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), 0, 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time of day: %s", value)
}
