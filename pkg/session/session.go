package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/borgmon/slotcal/pkg/calendar"
	"github.com/borgmon/slotcal/pkg/models"
	"github.com/borgmon/slotcal/pkg/store"
)

// State tracks where the user is in the day-selection and booking workflow
type State string

const (
	StateBrowsing         State = "Browsing"
	StateDaySelected      State = "DaySelected"
	StateComposingBooking State = "ComposingBooking"
)

// MissingFieldError reports which required booking fields were empty at
// submit time.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Session owns the displayed month, the current selection, and the booking
// workflow. It is the single owner of all mutable view state; the store is
// injected at construction.
type Session struct {
	store        *store.BookingStore
	defaultColor string

	year  int // displayed year
	month int // displayed month, zero-indexed
	state State

	selected    models.DayKey
	hasSelected bool
}

// New creates a session showing the given month. Out-of-range months are
// normalized with year rollover. defaultColor is applied to submitted
// bookings that carry no color.
func New(bookingStore *store.BookingStore, year, month int, defaultColor string) *Session {
	year, month = calendar.Normalize(year, month)
	return &Session{
		store:        bookingStore,
		defaultColor: defaultColor,
		year:         year,
		month:        month,
		state:        StateBrowsing,
	}
}

// SetDefaultColor updates the color applied to submitted bookings that carry
// none, keeping the session in step with a changed preference.
func (s *Session) SetDefaultColor(color string) {
	s.defaultColor = color
}

// Displayed returns the currently displayed year and zero-indexed month.
func (s *Session) Displayed() (year, month int) {
	return s.year, s.month
}

// State returns the current workflow state.
func (s *Session) State() State {
	return s.state
}

// SelectedDay returns the currently selected day key, if any.
func (s *Session) SelectedDay() (models.DayKey, bool) {
	return s.selected, s.hasSelected
}

// Grid projects the displayed month plus the store's bookings into cell view
// models for the view layer.
func (s *Session) Grid() []models.CellViewModel {
	return calendar.MonthGrid(s.year, s.month, s.store.ForMonth(s.year, s.month))
}

// SelectDay records the clicked day in the displayed month and surfaces its
// bookings. The second return is false when the day has none, so the view can
// show its empty-state message.
func (s *Session) SelectDay(day int) ([]models.Booking, bool) {
	s.selected = models.DayKey{Year: s.year, Month: s.month, Day: day}
	s.hasSelected = true
	s.state = StateDaySelected

	return s.store.Lookup(s.selected)
}

// SelectedBookings returns the bookings for the currently selected day.
func (s *Session) SelectedBookings() ([]models.Booking, bool) {
	if !s.hasSelected {
		return nil, false
	}
	return s.store.Lookup(s.selected)
}

// OpenComposer opens the booking creation form for the selected day. It is
// a no-op unless a day is selected.
func (s *Session) OpenComposer() bool {
	if s.state != StateDaySelected {
		return false
	}
	s.state = StateComposingBooking
	return true
}

// CancelComposer discards the form without touching the store.
func (s *Session) CancelComposer() {
	if s.state == StateComposingBooking {
		s.state = StateDaySelected
	}
}

// Submit validates the form fields and appends a new booking under the
// selected day. Name, start and end are required; when any is empty the
// submit is rejected with *MissingFieldError, nothing is mutated, and the
// composer stays open. An empty color falls back to the session default.
func (s *Session) Submit(name, color, start, end string) (models.Booking, error) {
	if s.state != StateComposingBooking {
		return models.Booking{}, fmt.Errorf("no booking in progress")
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if start == "" {
		missing = append(missing, "start time")
	}
	if end == "" {
		missing = append(missing, "end time")
	}
	if len(missing) > 0 {
		return models.Booking{}, &MissingFieldError{Fields: missing}
	}

	if color == "" {
		color = s.defaultColor
	}

	booking := models.Booking{
		ID:         uuid.New().String(),
		PersonName: name,
		Color:      color,
		StartTime:  start,
		EndTime:    end,
	}
	s.store.Append(s.selected, booking)
	s.state = StateDaySelected

	return booking, nil
}

// NextMonth advances the displayed month by one, rolling the year over at
// December. Navigation returns to Browsing and clears the selection.
func (s *Session) NextMonth() {
	s.shiftMonth(1)
}

// PrevMonth moves the displayed month back by one, rolling the year over at
// January.
func (s *Session) PrevMonth() {
	s.shiftMonth(-1)
}

func (s *Session) shiftMonth(delta int) {
	s.year, s.month = calendar.Normalize(s.year, s.month+delta)
	s.state = StateBrowsing
	s.hasSelected = false
	s.selected = models.DayKey{}
}
