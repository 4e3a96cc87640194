// Package registry holds the in-memory hotel inventory, its clients and their
// reservations.
//
// A Registry is not safe for concurrent use. Callers that share one across
// goroutines must guard every method with a single mutex, since Reserve reads
// availability and appends in one step.
package registry

import (
	"slices"

	"reception/internal/calendar"
	reservationerrors "reception/internal/reservations/errors"
	"reception/pkg/model"
)

type Registry struct {
	rooms        []model.Room
	clients      []model.Client
	reservations []model.Reservation

	roomIdx        map[int]int
	clientIdx      map[int]int
	reservationIdx map[int]int

	nextRoomID        int
	nextClientID      int
	nextReservationID int
}

func New() *Registry {
	return &Registry{
		roomIdx:           make(map[int]int),
		clientIdx:         make(map[int]int),
		reservationIdx:    make(map[int]int),
		nextRoomID:        1,
		nextClientID:      1,
		nextReservationID: 1,
	}
}

// RegisterRoom adds an active room and returns its identifier.
func (r *Registry) RegisterRoom(category model.Category, nightlyPrice float64) int {
	id := r.nextRoomID
	r.nextRoomID++
	r.roomIdx[id] = len(r.rooms)
	r.rooms = append(r.rooms, model.Room{
		ID:           id,
		Category:     category,
		NightlyPrice: nightlyPrice,
		Active:       true,
	})
	return id
}

// RegisterClient adds a client. Duplicates are accepted.
func (r *Registry) RegisterClient(name, email, phone string) int {
	id := r.nextClientID
	r.nextClientID++
	r.clientIdx[id] = len(r.clients)
	r.clients = append(r.clients, model.Client{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	})
	return id
}

// DeactivateRoom takes a room out of availability and booking. Reservations
// already on the room are kept and can still be priced.
func (r *Registry) DeactivateRoom(id int) bool {
	i, ok := r.roomIdx[id]
	if !ok {
		return false
	}
	r.rooms[i].Active = false
	return true
}

// ListAvailableRooms returns the active rooms of category in registration
// order. Date filtering only happens when both checkIn and checkOut are
// non-empty; otherwise existing bookings are ignored.
func (r *Registry) ListAvailableRooms(category model.Category, checkIn, checkOut string) ([]model.Room, error) {
	filterDates := checkIn != "" && checkOut != ""

	var ci, co int
	if filterDates {
		var err error
		if ci, co, err = parseRange(checkIn, checkOut); err != nil {
			return nil, err
		}
	}

	result := []model.Room{}
	for _, room := range r.rooms {
		if !room.Active || room.Category != category {
			continue
		}
		if filterDates && r.booked(room.ID, ci, co) {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

// Reserve books the first free active room of category for [checkIn, checkOut).
// An inverted or empty range and a full house both yield ErrNotAvailable.
// clientID is not checked against registered clients.
func (r *Registry) Reserve(clientID int, category model.Category, checkIn, checkOut string) (int, error) {
	ci, co, err := parseRange(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	if co <= ci {
		return 0, reservationerrors.ErrNotAvailable
	}

	for _, room := range r.rooms {
		if !room.Active || room.Category != category {
			continue
		}
		if r.booked(room.ID, ci, co) {
			continue
		}

		id := r.nextReservationID
		r.nextReservationID++
		r.reservationIdx[id] = len(r.reservations)
		r.reservations = append(r.reservations, model.Reservation{
			ID:       id,
			ClientID: clientID,
			RoomID:   room.ID,
			CheckIn:  ci,
			CheckOut: co,
		})
		return id, nil
	}
	return 0, reservationerrors.ErrNotAvailable
}

// CancelReservation removes the reservation and reports whether it existed.
func (r *Registry) CancelReservation(id int) bool {
	i, ok := r.reservationIdx[id]
	if !ok {
		return false
	}
	r.reservations = slices.Delete(r.reservations, i, i+1)
	delete(r.reservationIdx, id)
	for j := i; j < len(r.reservations); j++ {
		r.reservationIdx[r.reservations[j].ID] = j
	}
	return true
}

// ReservationCost prices a stay as nights times the room's nightly price.
func (r *Registry) ReservationCost(id int) (float64, error) {
	res, ok := r.Reservation(id)
	if !ok {
		return 0, reservationerrors.ErrNotFound
	}
	room, ok := r.Room(res.RoomID)
	if !ok {
		return 0, reservationerrors.ErrRoomNotFound
	}
	return float64(res.Nights()) * room.NightlyPrice, nil
}

func (r *Registry) Room(id int) (model.Room, bool) {
	i, ok := r.roomIdx[id]
	if !ok {
		return model.Room{}, false
	}
	return r.rooms[i], true
}

func (r *Registry) Client(id int) (model.Client, bool) {
	i, ok := r.clientIdx[id]
	if !ok {
		return model.Client{}, false
	}
	return r.clients[i], true
}

func (r *Registry) Reservation(id int) (model.Reservation, bool) {
	i, ok := r.reservationIdx[id]
	if !ok {
		return model.Reservation{}, false
	}
	return r.reservations[i], true
}

func (r *Registry) Rooms() []model.Room {
	return slices.Clone(r.rooms)
}

func (r *Registry) Reservations() []model.Reservation {
	return slices.Clone(r.reservations)
}

func (r *Registry) booked(roomID, ci, co int) bool {
	for _, res := range r.reservations {
		if res.RoomID != roomID {
			continue
		}
		if calendar.Overlaps(res.CheckIn, res.CheckOut, ci, co) {
			return true
		}
	}
	return false
}

func parseRange(checkIn, checkOut string) (int, int, error) {
	ci, err := calendar.ParseDate(checkIn)
	if err != nil {
		return 0, 0, err
	}
	co, err := calendar.ParseDate(checkOut)
	if err != nil {
		return 0, 0, err
	}
	return ci, co, nil
}
