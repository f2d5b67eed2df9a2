package models

type ProjectStatus string

const (
	ProjectOpen   ProjectStatus = "open"
	ProjectClosed ProjectStatus = "closed"
)

// Location always carries both fields together.
type Location struct {
	State string `json:"state"`
	City  string `json:"city"`
}

type Project struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"clientId"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	RequiredSkills []string      `json:"requiredSkills"`
	Status         ProjectStatus `json:"status"` // open -> closed, exactly once
	IsLocal        bool          `json:"isLocal"`
	Location       Location      `json:"location"`
}
