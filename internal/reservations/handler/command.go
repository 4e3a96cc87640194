package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"reception/internal/calendar"
	"reception/internal/reservations/service"
	"reception/pkg/config"
	apperrors "reception/pkg/errors"
	"reception/pkg/logger"
	"reception/pkg/model"

	"github.com/urfave/cli/v2"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// CommandHandler turns reception desk text commands into service calls.
type CommandHandler struct {
	service  service.ReceptionService
	out      io.Writer
	log      *logger.Logger
	currency string
}

func NewCommandHandler(service service.ReceptionService, out io.Writer, cfg *config.Config) *CommandHandler {
	return &CommandHandler{
		service:  service,
		out:      out,
		log:      cfg.Log,
		currency: cfg.Currency,
	}
}

// Serve executes every line of in until EOF. Command failures are reported
// on the output and do not stop the session.
func (h *CommandHandler) Serve(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.Execute(ctx, scanner.Text()); err != nil {
			h.log.Debug("command failed", "line", lineNo, "error", err)
			h.printf("error: %s\n", errorMessage(err))
		}
	}
	return scanner.Err()
}

// Execute runs a single command line. Blank lines and # comments are ignored.
func (h *CommandHandler) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields, err := splitFields(line)
	if err != nil {
		return apperrors.InvalidInput("could not read command", err)
	}

	return h.app().RunContext(ctx, append([]string{"reception"}, fields...))
}

func (h *CommandHandler) app() *cli.App {
	return &cli.App{
		Name:           "reception",
		Usage:          "hotel reception desk",
		HideVersion:    true,
		Writer:         h.out,
		ErrWriter:      h.out,
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return nil
			}
			return apperrors.InvalidInput(fmt.Sprintf("unknown command %q, try \"help\"", c.Args().First()), nil)
		},
		Commands: h.commands(),
	}
}

func (h *CommandHandler) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "room",
			Usage: "manage rooms",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "register a room",
					ArgsUsage: "<category> <nightly-price>",
					// a negative price must reach validation instead of the flag parser
					SkipFlagParsing: true,
					Action:          h.addRoom,
				},
				{
					Name:      "deactivate",
					Usage:     "take a room out of service",
					ArgsUsage: "<room-id>",
					Action:    h.deactivateRoom,
				},
			},
		},
		{
			Name:      "rooms",
			Usage:     "list available rooms of a category",
			ArgsUsage: "<category> [<check-in> <check-out>]",
			Action:    h.availableRooms,
		},
		{
			Name:  "client",
			Usage: "manage clients",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "register a client",
					ArgsUsage: "<name> <email> <phone>",
					Action:    h.addClient,
				},
			},
		},
		{
			Name:      "reserve",
			Usage:     "book the first free room of a category",
			ArgsUsage: "<client-id> <category> <check-in> <check-out>",
			Action:    h.reserve,
		},
		{
			Name:      "cancel",
			Usage:     "cancel a reservation",
			ArgsUsage: "<reservation-id>",
			Action:    h.cancel,
		},
		{
			Name:      "cost",
			Usage:     "price a reservation",
			ArgsUsage: "<reservation-id>",
			Action:    h.cost,
		},
		{
			Name:      "show",
			Usage:     "show a reservation",
			ArgsUsage: "<reservation-id>",
			Action:    h.show,
		},
		{
			Name:   "list",
			Usage:  "list all reservations",
			Action: h.list,
		},
	}
}

func (h *CommandHandler) addRoom(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	price, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return apperrors.InvalidInput(fmt.Sprintf("invalid nightly price %q", c.Args().Get(1)), err)
	}

	room, err := h.service.RegisterRoom(c.Context, &model.RoomInput{
		Category:     c.Args().Get(0),
		NightlyPrice: price,
	})
	if err != nil {
		return err
	}
	h.printf("room %d registered: %s at %s/night\n", room.ID, room.Category, h.money(room.NightlyPrice))
	return nil
}

func (h *CommandHandler) deactivateRoom(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	id, err := parseID(c.Args().Get(0), "room")
	if err != nil {
		return err
	}

	if err := h.service.DeactivateRoom(c.Context, id); err != nil {
		return err
	}
	h.printf("room %d deactivated\n", id)
	return nil
}

func (h *CommandHandler) availableRooms(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	category, err := parseCategory(c.Args().Get(0))
	if err != nil {
		return err
	}

	rooms, err := h.service.AvailableRooms(c.Context, category, c.Args().Get(1), c.Args().Get(2))
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		h.printf("no %s rooms available\n", category)
		return nil
	}
	for _, room := range rooms {
		h.printf("room %d  %s  %s/night\n", room.ID, room.Category, h.money(room.NightlyPrice))
	}
	return nil
}

func (h *CommandHandler) addClient(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	client, err := h.service.RegisterClient(c.Context, &model.ClientInput{
		Name:  c.Args().Get(0),
		Email: c.Args().Get(1),
		Phone: c.Args().Get(2),
	})
	if err != nil {
		return err
	}
	h.printf("client %d registered: %s\n", client.ID, client.Name)
	return nil
}

func (h *CommandHandler) reserve(c *cli.Context) error {
	if err := requireArgs(c, 4); err != nil {
		return err
	}
	clientID, err := parseID(c.Args().Get(0), "client")
	if err != nil {
		return err
	}
	category, err := parseCategory(c.Args().Get(1))
	if err != nil {
		return err
	}

	res, err := h.service.Reserve(c.Context, clientID, category, c.Args().Get(2), c.Args().Get(3))
	if err != nil {
		return err
	}
	h.printf("reservation %d confirmed: %s\n", res.ID, describe(res))
	return nil
}

func (h *CommandHandler) cancel(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	id, err := parseID(c.Args().Get(0), "reservation")
	if err != nil {
		return err
	}

	cancelled, err := h.service.Cancel(c.Context, id)
	if err != nil {
		return err
	}
	if !cancelled {
		h.printf("reservation %d was not found, nothing cancelled\n", id)
		return nil
	}
	h.printf("reservation %d cancelled\n", id)
	return nil
}

func (h *CommandHandler) cost(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	id, err := parseID(c.Args().Get(0), "reservation")
	if err != nil {
		return err
	}

	cost, err := h.service.Cost(c.Context, id)
	if err != nil {
		return err
	}
	h.printf("reservation %d costs %s\n", id, h.money(cost))
	return nil
}

func (h *CommandHandler) show(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	id, err := parseID(c.Args().Get(0), "reservation")
	if err != nil {
		return err
	}

	res, err := h.service.Reservation(c.Context, id)
	if err != nil {
		return err
	}
	h.printf("reservation %d: client %d, %s\n", res.ID, res.ClientID, describe(res))
	return nil
}

func (h *CommandHandler) list(c *cli.Context) error {
	list, err := h.service.Reservations(c.Context)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		h.printf("no reservations\n")
		return nil
	}
	for i := range list {
		h.printf("reservation %d: client %d, %s\n", list[i].ID, list[i].ClientID, describe(&list[i]))
	}
	return nil
}

// --- Helpers ---

func (h *CommandHandler) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.log.Error("failed to write command output", "error", err)
	}
}

func (h *CommandHandler) money(amount float64) string {
	return fmt.Sprintf("%.2f %s", amount, h.currency)
}

func describe(res *model.Reservation) string {
	return fmt.Sprintf("room %d, %s to %s (%d nights)",
		res.RoomID,
		calendar.FormatDays(res.CheckIn),
		calendar.FormatDays(res.CheckOut),
		res.Nights(),
	)
}

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return apperrors.InvalidInput(fmt.Sprintf("usage: %s %s", c.Command.HelpName, c.Command.ArgsUsage), nil)
	}
	return nil
}

func parseID(s, resource string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s id %q", resource, s), err)
	}
	return id, nil
}

func parseCategory(s string) (model.Category, error) {
	category, err := model.ParseCategory(s)
	if err != nil {
		return "", apperrors.InvalidInput(err.Error(), nil)
	}
	return category, nil
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.CodeValidation {
			if detail, ok := appErr.Details["error"].(string); ok {
				return appErr.Message + ": " + detail
			}
		}
		return appErr.Message
	}
	return err.Error()
}

// splitFields splits line on whitespace. Double quotes group words into one
// field and may produce an empty field.
func splitFields(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inQuote, inField := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inField = true
		case unicode.IsSpace(r) && !inQuote:
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}

	if inQuote {
		return nil, errUnterminatedQuote
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
