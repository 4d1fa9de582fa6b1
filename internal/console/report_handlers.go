package console

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airlineops/internal/validate"
)

func (m *Menu) promptExistingFlight(ctx context.Context) (int64, error) {
	for {
		flightNum, err := prompt(m.prompter, "Enter flight number: ", validate.ID)
		if err != nil {
			return 0, err
		}
		exists, err := m.reports.FlightExists(ctx, flightNum)
		if err != nil {
			return 0, err
		}
		if exists {
			return flightNum, nil
		}
		fmt.Fprintln(m.out, "This flight does not exist, enter a valid flight number")
	}
}

func (m *Menu) listAvailableSeats(ctx context.Context) error {
	flightNum, err := m.promptExistingFlight(ctx)
	if err != nil {
		return err
	}

	available, err := m.reports.AvailableSeats(ctx, flightNum)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Flight %d has %d seats available\n", flightNum, available)
	return nil
}

func (m *Menu) listRepairsPerPlane(ctx context.Context) error {
	counts, err := m.reports.RepairsPerPlane(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "plane_id\trepairs")
	for _, c := range counts {
		fmt.Fprintf(m.out, "%d\t%d\n", c.PlaneID, c.Repairs)
	}
	return nil
}

func (m *Menu) listRepairsPerYear(ctx context.Context) error {
	counts, err := m.reports.RepairsPerYear(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "year\trepairs")
	for _, c := range counts {
		fmt.Fprintf(m.out, "%d\t%d\n", c.Year, c.Repairs)
	}
	return nil
}

func (m *Menu) countPassengersByStatus(ctx context.Context) error {
	flightNum, err := m.promptExistingFlight(ctx)
	if err != nil {
		return err
	}
	status, err := prompt(m.prompter, "Enter status (W/C/R): ", validate.ReservationStatus)
	if err != nil {
		return err
	}

	count, err := m.reports.PassengerCountByStatus(ctx, flightNum, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Flight %d has %d passengers with status %s\n", flightNum, count, status)
	return nil
}
