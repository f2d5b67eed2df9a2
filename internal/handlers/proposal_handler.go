package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/services/data"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

type ProposalHandler struct {
	Data *data.DataService
}

func NewProposalHandler(svc *data.DataService) *ProposalHandler {
	return &ProposalHandler{Data: svc}
}

type SubmitProposalReq struct {
	ProjectID   string `json:"projectId"`
	CoverLetter string `json:"coverLetter"`
}

type UpdateProposalStatusReq struct {
	Status string `json:"status"` // approved / rejected
}

// Submit creates a pending proposal for the authenticated freelancer.
// Proposing twice on the same project is allowed; closed projects are not
// rejected here either (the dashboard simply stops offering the form).
func (h *ProposalHandler) Submit(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req SubmitProposalReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	errs := FieldErrors{}
	if req.ProjectID == "" {
		errs.Add("projectId", "Project is required")
	}
	if req.CoverLetter == "" {
		errs.Add("coverLetter", "Cover letter is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	// no orphan proposals
	if _, err := h.Data.ProjectByID(req.ProjectID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Project not found",
		})
	}

	p, err := h.Data.SubmitProposal(data.SubmitProposalInput{
		ProjectID:    req.ProjectID,
		FreelancerID: uid,
		CoverLetter:  req.CoverLetter,
	})
	if errors.Is(err, store.ErrUnavailable) {
		return storageFail(c)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to submit proposal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Proposal submitted",
		"data":    p,
	})
}

// ListMine returns the authenticated freelancer's proposals, newest first.
func (h *ProposalHandler) ListMine(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	out := []models.Proposal{}
	for _, p := range h.Data.Proposals() {
		if p.FreelancerID == uid {
			out = append(out, p)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// ListForProject returns the proposals on one of the client's projects.
func (h *ProposalHandler) ListForProject(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	project, err := h.Data.ProjectByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Project not found",
		})
	}
	if project.ClientID != uid {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Not your project",
		})
	}

	out := []models.Proposal{}
	for _, p := range h.Data.Proposals() {
		if p.ProjectID == project.ID {
			out = append(out, p)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// UpdateStatus approves or rejects a proposal; approval also closes the
// referenced project inside the service. Only the client owning that project
// may decide.
func (h *ProposalHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req UpdateProposalStatusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	proposal, err := h.Data.ProposalByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Proposal not found",
		})
	}
	if project, err := h.Data.ProjectByID(proposal.ProjectID); err == nil && project.ClientID != uid {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Not your project",
		})
	}

	err = h.Data.UpdateProposalStatus(proposal.ID, models.ProposalStatus(req.Status))
	switch {
	case errors.Is(err, data.ErrBadStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Status must be approved or rejected",
		})
	case errors.Is(err, data.ErrProposalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Proposal not found",
		})
	case errors.Is(err, store.ErrUnavailable):
		return storageFail(c)
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update proposal",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Proposal updated",
	})
}
