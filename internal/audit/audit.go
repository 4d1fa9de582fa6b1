package audit

import (
	"context"
	"log"

	"github.com/Domenick1991/airlineops/internal/kafka"
)

// Recorder writes consumed reservation events to the operations audit log.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(ctx context.Context, event kafka.ReservationEvent) error {
	log.Printf("audit: %s reservation=%d flight=%d customer=%d status=%s",
		event.Type, event.ReservationNum, event.FlightNum, event.CustomerID, event.Status)
	return nil
}
