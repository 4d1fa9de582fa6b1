package domain

type Pilot struct {
	ID          int64
	FullName    string
	Nationality string
}

type Technician struct {
	ID       int64
	FullName string
}
