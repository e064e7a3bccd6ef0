package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"safari-njema/internal/data/entity"
	"safari-njema/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seats that start out booked when a trip's seat map is first touched.
// Demo seed only, a real deployment seeds from persisted bookings.
var presetBookedSeats = []int{2, 5, 8, 12, 15, 18, 22, 27}

// UnavailableSeatsError lists the seats that blocked a reserve or book.
type UnavailableSeatsError struct {
	Seats []int
}

func (e *UnavailableSeatsError) Error() string {
	return fmt.Sprintf("Seats %s are not available", utils.JoinSeatNumbers(e.Seats))
}

// Hold is the time-boxed reservation returned to the client. The ID is the
// token a later booking presents to convert the held seats.
type Hold struct {
	ID        string
	TripID    string
	Seats     []int
	ExpiresAt time.Time
}

// Ledger is the authoritative per-trip seat-state map. Every mutation of a
// trip's seats, including hold expiry, runs under that trip's mutex, so
// reserve/book/expire never interleave.
type Ledger struct {
	mu      sync.Mutex
	trips   map[string]*tripLedger
	holdTTL time.Duration
	log     *zap.Logger
}

type tripLedger struct {
	mu         sync.Mutex
	totalSeats int
	states     map[int]entity.SeatState
	expiries   map[int]time.Time
	holds      map[string]*seatHold
	seatToHold map[int]*seatHold
}

type seatHold struct {
	id        string
	seats     map[int]struct{}
	expiresAt time.Time
	timer     *time.Timer
}

func New(holdTTL time.Duration, log *zap.Logger) *Ledger {
	return &Ledger{
		trips:   make(map[string]*tripLedger),
		holdTTL: holdTTL,
		log:     log.With(zap.String("component", "ledger")),
	}
}

// tripFor lazily initializes the seat map for a trip, all seats available
// except the preset booked block.
func (l *Ledger) tripFor(tripID string, totalSeats int) *tripLedger {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.trips[tripID]
	if !ok {
		t = &tripLedger{
			totalSeats: totalSeats,
			states:     make(map[int]entity.SeatState),
			expiries:   make(map[int]time.Time),
			holds:      make(map[string]*seatHold),
			seatToHold: make(map[int]*seatHold),
		}
		for _, seat := range presetBookedSeats {
			if seat <= totalSeats {
				t.states[seat] = entity.SeatBooked
			}
		}
		l.trips[tripID] = t
	}
	return t
}

func (t *tripLedger) stateOf(seat int) entity.SeatState {
	if state, ok := t.states[seat]; ok {
		return state
	}
	return entity.SeatAvailable
}

// detach removes a seat from its hold, stopping the expiry timer once the
// hold has no seats left. Caller holds t.mu.
func (t *tripLedger) detach(seat int) {
	h, ok := t.seatToHold[seat]
	if !ok {
		return
	}
	delete(h.seats, seat)
	delete(t.seatToHold, seat)
	if len(h.seats) == 0 {
		h.timer.Stop()
		delete(t.holds, h.id)
	}
}

func validateSeats(tripID string, totalSeats int, seats []int) ([]int, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("invalid request: seat numbers required")
	}

	seen := make(map[int]struct{}, len(seats))
	unique := make([]int, 0, len(seats))
	for _, seat := range seats {
		if seat < 1 || seat > totalSeats {
			return nil, fmt.Errorf("invalid seat number %d for trip %s: must be between 1 and %d", seat, tripID, totalSeats)
		}
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		unique = append(unique, seat)
	}
	sort.Ints(unique)
	return unique, nil
}

// Status returns one record per seat, numbers 1..totalSeats.
func (l *Ledger) Status(tripID string, totalSeats int) []entity.SeatRecord {
	t := l.tripFor(tripID, totalSeats)

	t.mu.Lock()
	defer t.mu.Unlock()

	records := make([]entity.SeatRecord, totalSeats)
	for seat := 1; seat <= totalSeats; seat++ {
		record := entity.SeatRecord{
			TripID:     tripID,
			SeatNumber: seat,
			State:      t.stateOf(seat),
		}
		if until, ok := t.expiries[seat]; ok && record.State == entity.SeatReserved {
			u := until
			record.ReservedUntil = &u
		}
		records[seat-1] = record
	}
	return records
}

// Reserve places an all-or-nothing hold on the given seats. If any seat is
// reserved or booked, nothing changes and the error lists the offenders.
// The hold releases itself after the configured TTL unless a booking
// converts it first.
func (l *Ledger) Reserve(tripID string, totalSeats int, seats []int) (*Hold, error) {
	seats, err := validateSeats(tripID, totalSeats, seats)
	if err != nil {
		return nil, err
	}

	t := l.tripFor(tripID, totalSeats)

	t.mu.Lock()
	defer t.mu.Unlock()

	var unavailable []int
	for _, seat := range seats {
		if t.stateOf(seat) != entity.SeatAvailable {
			unavailable = append(unavailable, seat)
		}
	}
	if len(unavailable) > 0 {
		return nil, &UnavailableSeatsError{Seats: unavailable}
	}

	h := &seatHold{
		id:        uuid.New().String(),
		seats:     make(map[int]struct{}, len(seats)),
		expiresAt: time.Now().Add(l.holdTTL),
	}
	for _, seat := range seats {
		t.states[seat] = entity.SeatReserved
		t.expiries[seat] = h.expiresAt
		t.seatToHold[seat] = h
		h.seats[seat] = struct{}{}
	}
	t.holds[h.id] = h
	h.timer = time.AfterFunc(l.holdTTL, func() {
		l.expireHold(tripID, h.id)
	})

	l.log.Info("Seats reserved",
		zap.String("trip_id", tripID),
		zap.String("hold_id", h.id),
		zap.Ints("seats", seats),
		zap.Time("expires_at", h.expiresAt),
	)

	return &Hold{ID: h.id, TripID: tripID, Seats: seats, ExpiresAt: h.expiresAt}, nil
}

// expireHold runs on the hold timer. A hold that was converted or fully
// released no longer exists, which makes a late firing a no-op.
func (l *Ledger) expireHold(tripID, holdID string) {
	l.mu.Lock()
	t, ok := l.trips[tripID]
	l.mu.Unlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.holds[holdID]
	if !ok {
		return
	}

	released := make([]int, 0, len(h.seats))
	for seat := range h.seats {
		if t.stateOf(seat) == entity.SeatReserved {
			t.states[seat] = entity.SeatAvailable
			delete(t.expiries, seat)
			released = append(released, seat)
		}
		delete(t.seatToHold, seat)
	}
	delete(t.holds, holdID)

	l.log.Info("Hold expired",
		zap.String("trip_id", tripID),
		zap.String("hold_id", holdID),
		zap.Ints("released", released),
	)
}

// Release idempotently returns reserved seats to available. Seats that are
// already available or booked are left alone.
func (l *Ledger) Release(tripID string, seats []int) {
	l.mu.Lock()
	t, ok := l.trips[tripID]
	l.mu.Unlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, seat := range seats {
		if t.stateOf(seat) != entity.SeatReserved {
			continue
		}
		t.states[seat] = entity.SeatAvailable
		delete(t.expiries, seat)
		t.detach(seat)
	}
}

// Book marks seats booked. Unlike the fully unconditional variant this is
// conflict-checked: booked seats always conflict, reserved seats convert
// only when the caller presents the hold that owns them. Converting a hold
// cancels its expiry timer so a stale expiry can never free sold seats.
func (l *Ledger) Book(tripID string, totalSeats int, seats []int, holdID string) error {
	seats, err := validateSeats(tripID, totalSeats, seats)
	if err != nil {
		return err
	}

	t := l.tripFor(tripID, totalSeats)

	t.mu.Lock()
	defer t.mu.Unlock()

	var unavailable []int
	for _, seat := range seats {
		switch t.stateOf(seat) {
		case entity.SeatBooked:
			unavailable = append(unavailable, seat)
		case entity.SeatReserved:
			h := t.seatToHold[seat]
			if holdID == "" || h == nil || h.id != holdID {
				unavailable = append(unavailable, seat)
			}
		}
	}
	if len(unavailable) > 0 {
		return &UnavailableSeatsError{Seats: unavailable}
	}

	for _, seat := range seats {
		t.detach(seat)
		t.states[seat] = entity.SeatBooked
		delete(t.expiries, seat)
	}

	l.log.Info("Seats booked",
		zap.String("trip_id", tripID),
		zap.Ints("seats", seats),
	)

	return nil
}
