package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/airlineops/internal/domain"
)

// Field validators for operator input. Each takes the raw line as typed and
// returns the accepted value or the reason it was rejected; callers own the
// re-prompt loop. No validator touches the store.

const dateLayout = "2006-01-02"

var (
	ErrEmpty = errors.New("value must not be empty")
)

func boundedString(raw string, max int) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmpty
	}
	if len(raw) > max {
		return "", fmt.Errorf("value must be at most %d characters", max)
	}
	return raw, nil
}

func PlaneMake(raw string) (string, error) {
	return boundedString(raw, 32)
}

func PlaneModel(raw string) (string, error) {
	return boundedString(raw, 64)
}

func PositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("value must be an integer")
	}
	if n <= 0 {
		return 0, errors.New("value must be positive")
	}
	return n, nil
}

func NonNegativeInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("value must be an integer")
	}
	if n < 0 {
		return 0, errors.New("value must not be negative")
	}
	return n, nil
}

func ID(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("value must be a numeric id")
	}
	return n, nil
}

func CrewName(raw string) (string, error) {
	return boundedString(raw, 128)
}

func Nationality(raw string) (string, error) {
	return boundedString(raw, 24)
}

func CustomerName(raw string) (string, error) {
	return boundedString(raw, 24)
}

func Address(raw string) (string, error) {
	return boundedString(raw, 256)
}

func Zipcode(raw string) (string, error) {
	return boundedString(raw, 10)
}

// Date accepts strict yyyy-mm-dd only. time.Parse rejects both wrong
// separators and impossible calendar days such as 2023-02-30, so no lenient
// rollover can slip through.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("date must be in yyyy-mm-dd format")
	}
	return t, nil
}

func AirportCode(raw string) (string, error) {
	if len(raw) != 5 {
		return "", errors.New("airport code must be exactly 5 characters")
	}
	return raw, nil
}

func Gender(raw string) (domain.Gender, error) {
	switch raw {
	case "M":
		return domain.GenderMale, nil
	case "F":
		return domain.GenderFemale, nil
	}
	return "", errors.New(`gender must be "M" or "F"`)
}

func Phone(raw string) (string, error) {
	if len(raw) != 10 {
		return "", errors.New("phone must be exactly 10 digits")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", errors.New("phone must contain digits only")
		}
	}
	return raw, nil
}

func YesNo(raw string) (bool, error) {
	switch raw {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, errors.New(`answer must be "yes" or "no"`)
}

func ReservationStatus(raw string) (domain.ReservationStatus, error) {
	switch raw {
	case "W":
		return domain.ReservationStatusWaitlisted, nil
	case "C":
		return domain.ReservationStatusConfirmed, nil
	case "R":
		return domain.ReservationStatusReserved, nil
	}
	return "", errors.New(`status must be "W", "C" or "R"`)
}
