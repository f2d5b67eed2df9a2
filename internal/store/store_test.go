package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkwork-app/linkwork_be/internal/models"
)

func tempDataFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "linkwork_data.json")
}

func TestOpenSeedsMissingFile(t *testing.T) {
	path := tempDataFile(t)

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, s.Users(), 2)
	assert.Len(t, s.Projects(), 2)
	assert.Len(t, s.Proposals(), 0)
	assert.Len(t, s.Gigs(), 3)

	emails := []string{s.Users()[0].Email, s.Users()[1].Email}
	assert.Contains(t, emails, DemoClientEmail)
	assert.Contains(t, emails, DemoFreelancerEmail)

	for _, p := range s.Projects() {
		assert.Equal(t, models.ProjectOpen, p.Status)
	}

	// seed must hit the disk, not just memory
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenFallsBackToSeedOnGarbage(t *testing.T) {
	path := tempDataFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, s.Users(), 2)
	assert.Len(t, s.Projects(), 2)
	assert.Len(t, s.Proposals(), 0)
	assert.Len(t, s.Gigs(), 3)
}

func TestOpenDefaultsMissingCollections(t *testing.T) {
	path := tempDataFile(t)
	doc := `{"users":[{"id":"u1","email":"a@b.c","password":"x","role":"client","name":"A","bio":"","skills":[]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	// parseable data is kept, absent collections become empty, no reseed
	require.Len(t, s.Users(), 1)
	assert.Equal(t, "u1", s.Users()[0].ID)
	assert.NotNil(t, s.Projects())
	assert.Len(t, s.Projects(), 0)
	assert.Len(t, s.Proposals(), 0)
	assert.Len(t, s.Gigs(), 0)
}

func TestSaveRoundTrip(t *testing.T) {
	path := tempDataFile(t)

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	projects := []models.Project{{
		ID:             "p1",
		ClientID:       "c1",
		Title:          "Logo",
		Description:    "desc",
		Price:          4000,
		RequiredSkills: []string{"Design"},
		Status:         models.ProjectOpen,
		IsLocal:        true,
		Location:       models.Location{State: "Delhi", City: "New Delhi"},
	}}
	require.NoError(t, s.Save(Update{Projects: projects}))

	// fresh process
	reopened, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, projects, reopened.Projects())
	assert.Equal(t, s.Users(), reopened.Users())
	assert.Equal(t, s.Gigs(), reopened.Gigs())
}

func TestSaveMergesUnrelatedCollections(t *testing.T) {
	path := tempDataFile(t)

	s1, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	s2, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s1.Save(Update{Projects: []models.Project{{ID: "p1", Status: models.ProjectOpen}}}))
	// s2 has a stale mirror but only writes proposals; the re-read before
	// merge must keep s1's project write intact
	require.NoError(t, s2.Save(Update{Proposals: []models.Proposal{{ID: "pr1", Status: models.ProposalPending}}}))

	reopened, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, reopened.Projects(), 1)
	assert.Equal(t, "p1", reopened.Projects()[0].ID)
	require.Len(t, reopened.Proposals(), 1)
	assert.Equal(t, "pr1", reopened.Proposals()[0].ID)
}

func TestSeedIsWellFormed(t *testing.T) {
	seeded := Seed()

	require.Len(t, seeded.Users, 2)
	client, freelancer := seeded.Users[0], seeded.Users[1]
	assert.Equal(t, models.RoleClient, client.Role)
	assert.Equal(t, DemoClientPassword, client.Password)
	assert.Equal(t, models.RoleFreelancer, freelancer.Role)
	assert.Equal(t, DemoFreelancerPassword, freelancer.Password)

	require.Len(t, seeded.Projects, 2)
	for _, p := range seeded.Projects {
		assert.Equal(t, client.ID, p.ClientID)
		assert.Equal(t, models.ProjectOpen, p.Status)
	}
	assert.True(t, seeded.Projects[0].IsLocal)
	assert.False(t, seeded.Projects[1].IsLocal)

	assert.Empty(t, seeded.Proposals)
	assert.Len(t, seeded.Gigs, 3)

	// the document must serialize to the documented wire shape
	raw, err := json.Marshal(seeded)
	require.NoError(t, err)
	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))
	for _, key := range []string{"users", "projects", "proposals", "gigs"} {
		assert.Contains(t, wire, key)
	}
}
