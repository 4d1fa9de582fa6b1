package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Domenick1991/airlineops/internal/service/booking"
	"github.com/Domenick1991/airlineops/internal/service/registry"
	"github.com/Domenick1991/airlineops/internal/service/reports"
)

// Menu drives the operator console. Every handler collects validated input,
// calls a service and prints the outcome; store errors abandon the operation
// with a message and fall back to the menu.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	registry registry.RegistryUseCase
	booking  booking.BookingUseCase
	reports  reports.ReportUseCase
}

func NewMenu(in io.Reader, out io.Writer, reg registry.RegistryUseCase, bkg booking.BookingUseCase, rpt reports.ReportUseCase) *Menu {
	return &Menu{
		prompter: NewPrompter(in, out),
		out:      out,
		registry: reg,
		booking:  bkg,
		reports:  rpt,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "MAIN MENU")
		fmt.Fprintln(m.out, "---------")
		fmt.Fprintln(m.out, "1. Add Plane")
		fmt.Fprintln(m.out, "2. Add Pilot")
		fmt.Fprintln(m.out, "3. Add Flight")
		fmt.Fprintln(m.out, "4. Add Technician")
		fmt.Fprintln(m.out, "5. Book Flight")
		fmt.Fprintln(m.out, "6. List number of available seats for a given flight")
		fmt.Fprintln(m.out, "7. List total number of repairs per plane in descending order")
		fmt.Fprintln(m.out, "8. List total number of repairs per year in ascending order")
		fmt.Fprintln(m.out, "9. Find total number of passengers with a given status")
		fmt.Fprintln(m.out, "10. < EXIT")

		choice, err := prompt(m.prompter, "Please make your choice: ", strconv.Atoi)
		if err != nil {
			return exitOnEOF(err)
		}

		var handlerErr error
		switch choice {
		case 1:
			handlerErr = m.addPlane(ctx)
		case 2:
			handlerErr = m.addPilot(ctx)
		case 3:
			handlerErr = m.addFlight(ctx)
		case 4:
			handlerErr = m.addTechnician(ctx)
		case 5:
			handlerErr = m.bookFlight(ctx)
		case 6:
			handlerErr = m.listAvailableSeats(ctx)
		case 7:
			handlerErr = m.listRepairsPerPlane(ctx)
		case 8:
			handlerErr = m.listRepairsPerYear(ctx)
		case 9:
			handlerErr = m.countPassengersByStatus(ctx)
		case 10:
			return nil
		default:
			fmt.Fprintln(m.out, "Unrecognized choice!")
			continue
		}

		if handlerErr != nil {
			if errors.Is(handlerErr, io.EOF) {
				return nil
			}
			// A single failed operation never takes the console down.
			fmt.Fprintf(m.out, "Operation failed: %v\n", handlerErr)
		}
	}
}

func exitOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
