package domain

import "time"

// Flight's NumSold is the only mutable counter in the model. It grows by one
// per confirmed booking and never exceeds the seat capacity of the plane
// bound through FlightInfo.
type Flight struct {
	Num              int64
	Cost             int
	NumSold          int
	NumStops         int
	DepartureDate    time.Time
	ArrivalDate      time.Time
	ArrivalAirport   string
	DepartureAirport string
}

// FlightInfo binds exactly one pilot and one plane to a flight. The row is
// written in the same transaction as the flight itself.
type FlightInfo struct {
	FlightNum int64
	PilotID   int64
	PlaneID   int64
}
