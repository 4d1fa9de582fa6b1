package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airlineops/internal/service/registry"
	"github.com/Domenick1991/airlineops/internal/validate"
)

func (m *Menu) addPlane(ctx context.Context) error {
	planeMake, err := prompt(m.prompter, "\t Enter make: ", validate.PlaneMake)
	if err != nil {
		return err
	}
	model, err := prompt(m.prompter, "\t Enter model: ", validate.PlaneModel)
	if err != nil {
		return err
	}
	age, err := prompt(m.prompter, "\t Enter age in years: ", validate.PositiveInt)
	if err != nil {
		return err
	}
	seats, err := prompt(m.prompter, "\t Enter seats: ", validate.PositiveInt)
	if err != nil {
		return err
	}

	plane, err := m.registry.AddPlane(ctx, registry.AddPlaneInput{
		Make:     planeMake,
		Model:    model,
		AgeYears: age,
		Seats:    seats,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Plane added with id %d\n", plane.ID)
	return nil
}

func (m *Menu) addPilot(ctx context.Context) error {
	fullName, err := prompt(m.prompter, "\t Enter pilot full name: ", validate.CrewName)
	if err != nil {
		return err
	}
	nationality, err := prompt(m.prompter, "\t Enter nationality: ", validate.Nationality)
	if err != nil {
		return err
	}

	pilot, err := m.registry.AddPilot(ctx, registry.AddPilotInput{
		FullName:    fullName,
		Nationality: nationality,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Pilot added with id %d\n", pilot.ID)
	return nil
}

func (m *Menu) addTechnician(ctx context.Context) error {
	fullName, err := prompt(m.prompter, "\t Enter technician full name: ", validate.CrewName)
	if err != nil {
		return err
	}

	technician, err := m.registry.AddTechnician(ctx, fullName)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Technician added with id %d\n", technician.ID)
	return nil
}

func (m *Menu) addFlight(ctx context.Context) error {
	cost, err := prompt(m.prompter, "\t Enter cost: ", validate.PositiveInt)
	if err != nil {
		return err
	}
	numSold, err := prompt(m.prompter, "\t Enter number sold: ", validate.NonNegativeInt)
	if err != nil {
		return err
	}
	numStops, err := prompt(m.prompter, "\t Enter number of stops: ", validate.NonNegativeInt)
	if err != nil {
		return err
	}
	departureDate, err := prompt(m.prompter, "\t Enter departure date (yyyy-mm-dd): ", validate.Date)
	if err != nil {
		return err
	}
	arrivalDate, err := prompt(m.prompter, "\t Enter arrival date (yyyy-mm-dd): ", validate.Date)
	if err != nil {
		return err
	}
	arrivalAirport, err := prompt(m.prompter, "\t Enter arrival airport: ", validate.AirportCode)
	if err != nil {
		return err
	}
	departureAirport, err := prompt(m.prompter, "\t Enter departure airport: ", validate.AirportCode)
	if err != nil {
		return err
	}

	// Referenced entities must resolve before anything is persisted.
	var pilotID int64
	for {
		pilotID, err = prompt(m.prompter, "\t Enter pilot id: ", validate.ID)
		if err != nil {
			return err
		}
		exists, err := m.registry.PilotExists(ctx, pilotID)
		if err != nil {
			return err
		}
		if exists {
			break
		}
		fmt.Fprintln(m.out, "This pilot does not exist, enter a valid pilot id")
	}

	var planeID int64
	var seats int
	for {
		planeID, err = prompt(m.prompter, "\t Enter plane id: ", validate.ID)
		if err != nil {
			return err
		}
		seats, err = m.registry.PlaneSeatCapacity(ctx, planeID)
		if err == nil {
			break
		}
		if !errors.Is(err, registry.ErrPlaneNotFound) {
			return err
		}
		fmt.Fprintln(m.out, "This plane does not exist, enter a valid plane id")
	}

	// Pre-creation guard: pre-sold seats must fit the chosen plane.
	for seats < numSold {
		fmt.Fprintln(m.out, "Number of seats sold exceeds plane capacity")
		numSold, err = prompt(m.prompter, "\t Enter number of seats sold: ", validate.NonNegativeInt)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(m.out, "Would you like to add this flight?\n")
	fmt.Fprintf(m.out, "Cost: %d\nSeats sold: %d\nStops: %d\nDeparture date: %s\nArrival date: %s\nArrival airport: %s\nDeparture airport: %s\nPilot ID: %d\nPlane ID: %d\n",
		cost, numSold, numStops, departureDate.Format("2006-01-02"), arrivalDate.Format("2006-01-02"), arrivalAirport, departureAirport, pilotID, planeID)
	confirmed, err := prompt(m.prompter, `Enter "yes" or "no": `, validate.YesNo)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(m.out, "Flight not added")
		return nil
	}

	flight, err := m.registry.AddFlight(ctx, registry.AddFlightInput{
		Cost:             cost,
		NumSold:          numSold,
		NumStops:         numStops,
		DepartureDate:    departureDate,
		ArrivalDate:      arrivalDate,
		ArrivalAirport:   arrivalAirport,
		DepartureAirport: departureAirport,
		PilotID:          pilotID,
		PlaneID:          planeID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Flight added with number %d\n", flight.Num)
	return nil
}
