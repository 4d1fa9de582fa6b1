package domain

type Plane struct {
	ID       int64
	Make     string
	Model    string
	AgeYears int
	Seats    int
}
