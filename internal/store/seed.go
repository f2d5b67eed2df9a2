package store

import (
	"github.com/google/uuid"

	"github.com/linkwork-app/linkwork_be/internal/models"
)

// Demo credentials. Login works for these because they exist as regular user
// records, not through any bypass path.
const (
	DemoClientEmail        = "client@client.com"
	DemoClientPassword     = "client"
	DemoFreelancerEmail    = "freelancer@freelancer.com"
	DemoFreelancerPassword = "freelancer"
)

// Seed builds the demo dataset used whenever the data slot is missing or
// unreadable: two fixed-credential users, two open projects owned by the demo
// client, no proposals, three gigs. IDs are fresh on every call.
func Seed() Data {
	clientID := uuid.NewString()
	freelancerID := uuid.NewString()

	users := []models.User{
		{
			ID:       clientID,
			Email:    DemoClientEmail,
			Password: DemoClientPassword,
			Role:     models.RoleClient,
			Name:     "Client One",
			Bio:      "Small business owner focusing on branding.",
			Skills:   []string{},
		},
		{
			ID:       freelancerID,
			Email:    DemoFreelancerEmail,
			Password: DemoFreelancerPassword,
			Role:     models.RoleFreelancer,
			Name:     "Freelancer Pro",
			Bio:      "Designer and writer with 5+ years experience.",
			Skills:   []string{"Design", "Writing"},
		},
	}

	projects := []models.Project{
		{
			ID:             uuid.NewString(),
			ClientID:       clientID,
			Title:          "Logo for coffee shop",
			Description:    "Need a clean, modern logo for a neighborhood coffee shop. Deliver vector and social media assets.",
			Price:          4000,
			RequiredSkills: []string{"Design", "Branding"},
			Status:         models.ProjectOpen,
			IsLocal:        true,
			Location:       models.Location{State: "Delhi", City: "New Delhi"},
		},
		{
			ID:             uuid.NewString(),
			ClientID:       clientID,
			Title:          "Website copy refresh",
			Description:    "Revamp homepage and about page copy to improve conversions.",
			Price:          6000,
			RequiredSkills: []string{"Writing", "Marketing"},
			Status:         models.ProjectOpen,
			IsLocal:        false,
			Location:       models.Location{State: "Maharashtra", City: "Mumbai"},
		},
	}

	gigs := []models.Gig{
		{ID: uuid.NewString(), Title: "One-page brochure", Price: 1500, TurnaroundTime: "2 days"},
		{ID: uuid.NewString(), Title: "Landing page wireframe", Price: 2500, TurnaroundTime: "3 days"},
		{ID: uuid.NewString(), Title: "Product description copy (3 items)", Price: 1200, TurnaroundTime: "1 day"},
	}

	return Data{
		Users:     users,
		Projects:  projects,
		Proposals: []models.Proposal{},
		Gigs:      gigs,
	}
}
