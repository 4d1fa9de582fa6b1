package domain

type ReservationStatus string

const (
	ReservationStatusReserved   ReservationStatus = "R"
	ReservationStatusConfirmed  ReservationStatus = "C"
	ReservationStatusWaitlisted ReservationStatus = "W"
)

// Reservation is immutable once created: there is no cancellation or
// waitlist-promotion path.
type Reservation struct {
	Num        int64
	CustomerID int64
	FlightNum  int64
	Status     ReservationStatus
}
