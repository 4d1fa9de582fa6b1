package domain

import "time"

type Repair struct {
	ID      int64
	PlaneID int64
	Date    time.Time
}

type PlaneRepairCount struct {
	PlaneID int64 `json:"plane_id"`
	Repairs int64 `json:"repairs"`
}

type YearRepairCount struct {
	Year    int   `json:"year"`
	Repairs int64 `json:"repairs"`
}
