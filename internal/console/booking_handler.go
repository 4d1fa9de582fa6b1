package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/service/booking"
	"github.com/Domenick1991/airlineops/internal/validate"
)

func (m *Menu) bookFlight(ctx context.Context) error {
	customerID, err := prompt(m.prompter, "Enter customer id: ", validate.ID)
	if err != nil {
		return err
	}

	exists, err := m.booking.LookupCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(m.out, "This id is not in our records. Would you like to sign up as a new guest?")
		register, err := prompt(m.prompter, `Enter "yes" or "no": `, validate.YesNo)
		if err != nil {
			return err
		}
		if !register {
			fmt.Fprintln(m.out, "Booking aborted")
			return nil
		}

		customer, err := m.registerGuest(ctx)
		if err != nil {
			return err
		}
		customerID = customer.ID
		fmt.Fprintf(m.out, "Guest registered with id %d\n", customerID)
	}

	var flightNum int64
	var cost int
	for {
		flightNum, err = prompt(m.prompter, "Enter flight number: ", validate.ID)
		if err != nil {
			return err
		}
		cost, err = m.booking.FlightCost(ctx, flightNum)
		if err == nil {
			break
		}
		if !errors.Is(err, booking.ErrFlightNotFound) {
			return err
		}
		fmt.Fprintln(m.out, "This flight does not exist, enter a valid flight number")
	}
	fmt.Fprintf(m.out, "Cost of flight %d: $%d\n", flightNum, cost)

	reservation, err := m.booking.Book(ctx, booking.BookInput{
		FlightNum:  flightNum,
		CustomerID: customerID,
		Confirm: func(available int) (bool, error) {
			fmt.Fprintf(m.out, "Flight has %d seats remaining. Reserve?\n", available)
			return prompt(m.prompter, `Enter "yes" or "no": `, validate.YesNo)
		},
	})
	if err != nil {
		if errors.Is(err, booking.ErrBookingDeclined) {
			fmt.Fprintln(m.out, "Booking aborted")
			return nil
		}
		return err
	}

	switch reservation.Status {
	case domain.ReservationStatusWaitlisted:
		fmt.Fprintf(m.out, "The flight is full, you have been added to the waitlist (reservation %d)\n", reservation.Num)
	default:
		fmt.Fprintf(m.out, "Seat reserved, reservation number %d\n", reservation.Num)
	}
	return nil
}

func (m *Menu) registerGuest(ctx context.Context) (*domain.Customer, error) {
	firstName, err := prompt(m.prompter, "\t Enter first name: ", validate.CustomerName)
	if err != nil {
		return nil, err
	}
	lastName, err := prompt(m.prompter, "\t Enter last name: ", validate.CustomerName)
	if err != nil {
		return nil, err
	}
	gender, err := prompt(m.prompter, "\t Enter gender (M/F): ", validate.Gender)
	if err != nil {
		return nil, err
	}
	birthDate, err := prompt(m.prompter, "\t Enter date of birth (yyyy-mm-dd): ", validate.Date)
	if err != nil {
		return nil, err
	}
	address, err := prompt(m.prompter, "\t Enter address: ", validate.Address)
	if err != nil {
		return nil, err
	}
	phone, err := prompt(m.prompter, "\t Enter phone (10 digits): ", validate.Phone)
	if err != nil {
		return nil, err
	}
	zipcode, err := prompt(m.prompter, "\t Enter zipcode: ", validate.Zipcode)
	if err != nil {
		return nil, err
	}

	return m.booking.RegisterGuest(ctx, booking.GuestInput{
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
		BirthDate: birthDate,
		Address:   address,
		Phone:     phone,
		Zipcode:   zipcode,
	})
}
