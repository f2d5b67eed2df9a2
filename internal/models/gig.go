package models

// Gig is a read-only catalog entry; gigs only ever come from seeding.
type Gig struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	TurnaroundTime string  `json:"turnaroundTime"`
}
