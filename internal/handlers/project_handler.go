package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/services/data"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

type ProjectHandler struct {
	Data *data.DataService
}

func NewProjectHandler(svc *data.DataService) *ProjectHandler {
	return &ProjectHandler{Data: svc}
}

type CreateProjectReq struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	RequiredSkills []string        `json:"requiredSkills"`
	IsLocal        bool            `json:"isLocal"`
	Location       models.Location `json:"location"`
}

// List returns projects newest-first, optionally narrowed by the location
// filter (state, city) and status the dashboards use.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	state := c.Query("state")
	city := c.Query("city")
	status := c.Query("status")

	out := []models.Project{}
	for _, p := range h.Data.Projects() {
		if state != "" && p.Location.State != state {
			continue
		}
		if city != "" && p.Location.City != city {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		out = append(out, p)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

func (h *ProjectHandler) GetDetail(c *fiber.Ctx) error {
	p, err := h.Data.ProjectByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Project not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    p,
	})
}

// ListMine returns the authenticated client's own projects.
func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	out := []models.Project{}
	for _, p := range h.Data.Projects() {
		if p.ClientID == uid {
			out = append(out, p)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req CreateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	errs := FieldErrors{}
	if req.Title == "" {
		errs.Add("title", "Title is required")
	}
	if req.Description == "" {
		errs.Add("description", "Description is required")
	}
	if req.Price <= 0 {
		errs.Add("price", "Price must be positive")
	}
	// state and city come as a pair or not at all
	if (req.Location.State == "") != (req.Location.City == "") {
		errs.Add("location", "State and city are required together")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	p, err := h.Data.CreateProject(data.CreateProjectInput{
		ClientID:       uid,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		RequiredSkills: req.RequiredSkills,
		IsLocal:        req.IsLocal,
		Location:       req.Location,
	})
	if errors.Is(err, store.ErrUnavailable) {
		return storageFail(c)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created",
		"data":    p,
	})
}
