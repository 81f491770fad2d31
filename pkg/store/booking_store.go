package store

import (
	"sync"

	"github.com/borgmon/slotcal/pkg/models"
)

// BookingStore manages the in-memory bookings for the session, keyed by day.
// A day with no bookings is absent from the map, never an empty slice.
type BookingStore struct {
	mu sync.RWMutex

	// Map of day key to bookings in insertion order
	bookings map[models.DayKey][]models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[models.DayKey][]models.Booking),
	}
}

// Append adds a booking to the given day, creating the day's sequence if
// absent. It always succeeds; there is no dedup and no capacity limit.
func (bs *BookingStore) Append(key models.DayKey, booking models.Booking) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.bookings[key] = append(bs.bookings[key], booking)
}

// Lookup returns the bookings for a day in insertion order. The second return
// is false when nothing was ever appended to that day.
func (bs *BookingStore) Lookup(key models.DayKey) ([]models.Booking, bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	list, ok := bs.bookings[key]
	if !ok {
		return nil, false
	}

	out := make([]models.Booking, len(list))
	copy(out, list)
	return out, true
}

// ForMonth returns a snapshot of all booked days within the given month
// (zero-indexed). Days outside the month are not included.
func (bs *BookingStore) ForMonth(year, month int) map[models.DayKey][]models.Booking {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	out := make(map[models.DayKey][]models.Booking)
	for key, list := range bs.bookings {
		if key.Year != year || key.Month != month {
			continue
		}
		cp := make([]models.Booking, len(list))
		copy(cp, list)
		out[key] = cp
	}
	return out
}

// All returns a snapshot of every booked day in the store.
func (bs *BookingStore) All() map[models.DayKey][]models.Booking {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	out := make(map[models.DayKey][]models.Booking, len(bs.bookings))
	for key, list := range bs.bookings {
		cp := make([]models.Booking, len(list))
		copy(cp, list)
		out[key] = cp
	}
	return out
}

// Count returns the total number of bookings across all days.
func (bs *BookingStore) Count() int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	total := 0
	for _, list := range bs.bookings {
		total += len(list)
	}
	return total
}

// ReplaceAll swaps the store contents for the given snapshot, used by iCal
// import. Days mapped to empty slices are dropped to keep the absence
// invariant.
func (bs *BookingStore) ReplaceAll(byDay map[models.DayKey][]models.Booking) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.bookings = make(map[models.DayKey][]models.Booking, len(byDay))
	for key, list := range byDay {
		if len(list) == 0 {
			continue
		}
		cp := make([]models.Booking, len(list))
		copy(cp, list)
		bs.bookings[key] = cp
	}
}
