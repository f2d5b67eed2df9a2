package models

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

type Proposal struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"projectId"`
	FreelancerID string         `json:"freelancerId"`
	CoverLetter  string         `json:"coverLetter"`
	Status       ProposalStatus `json:"status"` // pending -> approved|rejected
}
