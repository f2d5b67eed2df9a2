package models

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// User is stored verbatim in the data slot, password included (plaintext by
// design, matched exactly on login). Handlers must never echo it back.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     Role     `json:"role"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
}
