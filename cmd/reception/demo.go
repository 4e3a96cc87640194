package main

import (
	"context"
	"fmt"
	"io"

	"reception/internal/reservations/service"
	"reception/pkg/model"
)

const (
	demoCheckIn  = "2025-12-20"
	demoCheckOut = "2025-12-25"
)

var demoRooms = []model.RoomInput{
	{Category: string(model.Simple), NightlyPrice: 50000},
	{Category: string(model.Double), NightlyPrice: 80000},
	{Category: string(model.Suite), NightlyPrice: 200000},
	{Category: string(model.Double), NightlyPrice: 90000},
}

// runDemo stocks a small hotel, books one Double stay for a sample guest and
// reports what is left.
func runDemo(ctx context.Context, svc service.ReceptionService, out io.Writer, currency string) error {
	for i := range demoRooms {
		room := demoRooms[i]
		if _, err := svc.RegisterRoom(ctx, &room); err != nil {
			return err
		}
	}

	client, err := svc.RegisterClient(ctx, &model.ClientInput{
		Name:  "Ana Perez",
		Email: "anapeto@gmail.com",
		Phone: "+573206952458",
	})
	if err != nil {
		return err
	}

	res, err := svc.Reserve(ctx, client.ID, model.Double, demoCheckIn, demoCheckOut)
	if err != nil {
		fmt.Fprintf(out, "No free rooms for %s to %s.\n", demoCheckIn, demoCheckOut)
	} else {
		fmt.Fprintf(out, "Reservation %d confirmed for %s.\n", res.ID, client.Name)
		cost, err := svc.Cost(ctx, res.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Total price: %.2f %s\n", cost, currency)
	}

	free, err := svc.AvailableRooms(ctx, model.Double, demoCheckIn, demoCheckOut)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Free %s rooms: %d\n", model.Double, len(free))
	return nil
}
