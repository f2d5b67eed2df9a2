package data

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrBadStatus        = errors.New("status must be approved or rejected")
)

// DataService owns the project and proposal lifecycle plus read access to
// the gig catalog. Role policy (who may call what) is enforced at the route
// layer, not here.
type DataService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewDataService(st *store.Store, log zerolog.Logger) *DataService {
	return &DataService{store: st, log: log}
}

// Projects returns the stored order: newest first, since creation prepends.
func (s *DataService) Projects() []models.Project {
	return s.store.Projects()
}

func (s *DataService) Proposals() []models.Proposal {
	return s.store.Proposals()
}

func (s *DataService) Gigs() []models.Gig {
	return s.store.Gigs()
}

func (s *DataService) ProposalByID(id string) (models.Proposal, error) {
	for _, p := range s.store.Proposals() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Proposal{}, ErrProposalNotFound
}

func (s *DataService) ProjectByID(id string) (models.Project, error) {
	for _, p := range s.store.Projects() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrProjectNotFound
}

type CreateProjectInput struct {
	ClientID       string
	Title          string
	Description    string
	Price          float64
	RequiredSkills []string
	IsLocal        bool
	Location       models.Location
}

// CreateProject prepends a new open project so the most recent one lists
// first.
func (s *DataService) CreateProject(in CreateProjectInput) (models.Project, error) {
	skills := in.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	p := models.Project{
		ID:             uuid.NewString(),
		ClientID:       in.ClientID,
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price,
		RequiredSkills: skills,
		Status:         models.ProjectOpen,
		IsLocal:        in.IsLocal,
		Location:       in.Location,
	}

	next := append([]models.Project{p}, s.store.Projects()...)
	if err := s.store.Save(store.Update{Projects: next}); err != nil {
		return models.Project{}, err
	}
	s.log.Info().Str("project_id", p.ID).Str("client_id", p.ClientID).Msg("project created")
	return p, nil
}

type SubmitProposalInput struct {
	ProjectID    string
	FreelancerID string
	CoverLetter  string
}

// SubmitProposal prepends a new pending proposal. Resubmitting to the same
// project is allowed; the dashboard shows every attempt.
func (s *DataService) SubmitProposal(in SubmitProposalInput) (models.Proposal, error) {
	p := models.Proposal{
		ID:           uuid.NewString(),
		ProjectID:    in.ProjectID,
		FreelancerID: in.FreelancerID,
		CoverLetter:  in.CoverLetter,
		Status:       models.ProposalPending,
	}

	next := append([]models.Proposal{p}, s.store.Proposals()...)
	if err := s.store.Save(store.Update{Proposals: next}); err != nil {
		return models.Proposal{}, err
	}
	s.log.Info().Str("proposal_id", p.ID).Str("project_id", p.ProjectID).Msg("proposal submitted")
	return p, nil
}

// UpdateProposalStatus moves a proposal to approved or rejected. Approval
// also closes the referenced project. Both records are computed from one
// pre-update snapshot and persisted in a single save, so the proposal→project
// link is always read before the proposal itself changes.
func (s *DataService) UpdateProposalStatus(proposalID string, status models.ProposalStatus) error {
	if status != models.ProposalApproved && status != models.ProposalRejected {
		return ErrBadStatus
	}

	proposals := s.store.Proposals()
	idx := -1
	for i, p := range proposals {
		if p.ID == proposalID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrProposalNotFound
	}

	projectID := proposals[idx].ProjectID
	proposals[idx].Status = status

	update := store.Update{Proposals: proposals}
	if status == models.ProposalApproved {
		projects := s.store.Projects()
		for i := range projects {
			if projects[i].ID == projectID {
				projects[i].Status = models.ProjectClosed
			}
		}
		update.Projects = projects
	}

	if err := s.store.Save(update); err != nil {
		return err
	}
	s.log.Info().Str("proposal_id", proposalID).Str("status", string(status)).Msg("proposal updated")
	return nil
}
