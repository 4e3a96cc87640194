package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reception/internal/calendar"
	reservationerrors "reception/internal/reservations/errors"
	"reception/internal/reservations/registry"
	"reception/internal/reservations/validator"
	"reception/pkg/config"
	apperrors "reception/pkg/errors"
	"reception/pkg/model"
	"reception/pkg/sanitizer"
)

type ReceptionService interface {
	RegisterRoom(ctx context.Context, input *model.RoomInput) (*model.Room, error)
	RegisterClient(ctx context.Context, input *model.ClientInput) (*model.Client, error)
	DeactivateRoom(ctx context.Context, id int) error
	AvailableRooms(ctx context.Context, category model.Category, checkIn, checkOut string) ([]model.Room, error)
	Reserve(ctx context.Context, clientID int, category model.Category, checkIn, checkOut string) (*model.Reservation, error)
	Cancel(ctx context.Context, id int) (bool, error)
	Cost(ctx context.Context, id int) (float64, error)
	Reservation(ctx context.Context, id int) (*model.Reservation, error)
	Reservations(ctx context.Context) ([]model.Reservation, error)
}

type receptionService struct {
	registry  *registry.Registry
	validator *validator.ReceptionValidator
	cfg       *config.Config
}

func NewReceptionService(
	registry *registry.Registry,
	validator *validator.ReceptionValidator,
	cfg *config.Config,
) ReceptionService {
	return &receptionService{
		registry:  registry,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *receptionService) RegisterRoom(ctx context.Context, input *model.RoomInput) (*model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	if c, err := model.ParseCategory(input.Category); err == nil {
		input.Category = string(c)
	}
	if err := s.validator.ValidateRoom(input); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return nil, apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}

	id := s.registry.RegisterRoom(model.Category(input.Category), input.NightlyPrice)
	room, ok := s.registry.Room(id)
	if !ok {
		return nil, apperrors.Internal("Registered room vanished", fmt.Errorf("room %d", id))
	}

	s.cfg.Log.Info("Room registered successfully",
		"room_id", room.ID,
		"category", room.Category,
		"nightly_price", room.NightlyPrice,
	)
	return &room, nil
}

func (s *receptionService) RegisterClient(ctx context.Context, input *model.ClientInput) (*model.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.sanitize(input)
	if err := s.validator.ValidateClient(input); err != nil {
		s.cfg.Log.Warn("Client validation failed", "error", err)
		return nil, apperrors.Validation("Client validation failed", map[string]any{"error": err.Error()})
	}

	id := s.registry.RegisterClient(input.Name, input.Email, input.Phone)
	client, ok := s.registry.Client(id)
	if !ok {
		return nil, apperrors.Internal("Registered client vanished", fmt.Errorf("client %d", id))
	}

	s.cfg.Log.Info("Client registered successfully", "client_id", client.ID)
	return &client, nil
}

func (s *receptionService) DeactivateRoom(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !s.registry.DeactivateRoom(id) {
		return apperrors.NotFoundWithID("Room", id)
	}

	s.cfg.Log.Info("Room deactivated", "room_id", id)
	return nil
}

func (s *receptionService) AvailableRooms(ctx context.Context, category model.Category, checkIn, checkOut string) ([]model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown room category %q", category), nil)
	}

	rooms, err := s.registry.ListAvailableRooms(category, checkIn, checkOut)
	if err != nil {
		return nil, s.mapDateError(err)
	}

	s.cfg.Log.Debug("Availability search completed",
		"category", category,
		"check_in", checkIn,
		"check_out", checkOut,
		"count", len(rooms),
	)
	return rooms, nil
}

func (s *receptionService) Reserve(ctx context.Context, clientID int, category model.Category, checkIn, checkOut string) (*model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown room category %q", category), nil)
	}

	id, err := s.registry.Reserve(clientID, category, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, reservationerrors.ErrNotAvailable) {
			s.cfg.Log.Warn("Reservation rejected",
				"client_id", clientID,
				"category", category,
				"check_in", checkIn,
				"check_out", checkOut,
			)
			return nil, apperrors.Conflict("no room available for the requested dates")
		}
		return nil, s.mapDateError(err)
	}

	res, ok := s.registry.Reservation(id)
	if !ok {
		return nil, apperrors.Internal("Created reservation vanished", fmt.Errorf("reservation %d", id))
	}

	s.cfg.Log.Info("Reservation created successfully",
		"reservation_id", res.ID,
		"client_id", res.ClientID,
		"room_id", res.RoomID,
		"check_in", calendar.FormatDays(res.CheckIn),
		"nights", res.Nights(),
	)
	return &res, nil
}

func (s *receptionService) Cancel(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	cancelled := s.registry.CancelReservation(id)
	if cancelled {
		s.cfg.Log.Info("Reservation cancelled", "reservation_id", id)
	} else {
		s.cfg.Log.Debug("Nothing to cancel", "reservation_id", id)
	}
	return cancelled, nil
}

func (s *receptionService) Cost(ctx context.Context, id int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cost, err := s.registry.ReservationCost(id)
	if err != nil {
		if errors.Is(err, reservationerrors.ErrNotFound) || errors.Is(err, reservationerrors.ErrRoomNotFound) {
			return 0, apperrors.NotFoundWithID("Reservation", id)
		}
		return 0, apperrors.Internal("Failed to price reservation", err)
	}
	return cost, nil
}

func (s *receptionService) Reservation(ctx context.Context, id int) (*model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, ok := s.registry.Reservation(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Reservation", id)
	}
	return &res, nil
}

func (s *receptionService) Reservations(ctx context.Context) ([]model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.registry.Reservations(), nil
}

// --- Helpers ---

func (s *receptionService) sanitize(c *model.ClientInput) {
	c.Name = sanitizer.SanitizeName(c.Name)
	c.Email = sanitizer.SanitizeEmail(c.Email)
	c.Phone = sanitizer.SanitizePhone(c.Phone, s.cfg.PhoneRegion)
}

func (s *receptionService) mapDateError(err error) error {
	if errors.Is(err, calendar.ErrMalformedDate) {
		return apperrors.InvalidInput(fmt.Sprintf("dates must use the %s layout", calendar.Layout), err)
	}
	return apperrors.Internal("Unexpected registry failure", err)
}
