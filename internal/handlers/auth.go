package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/linkwork-app/linkwork_be/internal/middleware"
	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/services/auth"
	"github.com/linkwork-app/linkwork_be/internal/store"
	"github.com/linkwork-app/linkwork_be/internal/utils"
)

type AuthHandler struct {
	Auth      *auth.AuthService
	JWTSecret string
	Expires   int
}

type RegisterReq struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
	Role     string   `json:"role"` // client / freelancer
}

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func storageFail(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Storage unavailable",
	})
}

func userPayload(u *models.User) fiber.Map {
	// password never leaves the store
	return fiber.Map{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
		"bio":    u.Bio,
		"skills": u.Skills,
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, u *models.User) error {
	token, err := utils.SignJWT(h.JWTSecret, u.ID, string(u.Role), h.Expires)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
	return nil
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	// Emails are matched exactly elsewhere (case-sensitive), so no
	// normalization happens here either.
	errs := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if req.Email == "" {
		errs.Add("email", "Email is required")
	} else if !strings.Contains(req.Email, "@") {
		errs.Add("email", "Email format is invalid")
	}
	if req.Password == "" {
		errs.Add("password", "Password is required")
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleFreelancer {
		errs.Add("role", "Role must be client or freelancer")
	}

	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	u, err := h.Auth.Signup(auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Name:     req.Name,
		Bio:      req.Bio,
		Skills:   req.Skills,
	})
	if errors.Is(err, auth.ErrEmailExists) {
		e := FieldErrors{}
		e.Add("email", "Email already exists")
		return validationFail(c, e)
	}
	if errors.Is(err, store.ErrUnavailable) {
		return storageFail(c)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Signup failed",
		})
	}

	if err := h.setSessionCookie(c, u); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Signup successful",
		"data":    fiber.Map{"user": userPayload(u)},
	})
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	errs := FieldErrors{}
	if req.Email == "" {
		errs.Add("email", "Email is required")
	}
	if req.Password == "" {
		errs.Add("password", "Password is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	u, err := h.Auth.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// 200 on purpose so the frontend form can render the message
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Invalid email or password",
		})
	}
	if errors.Is(err, store.ErrUnavailable) {
		return storageFail(c)
	}
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Login failed",
		})
	}

	if err := h.setSessionCookie(c, u); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    fiber.Map{"user": userPayload(u)},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout()

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	u, err := h.Auth.UserByID(uid)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user": userPayload(u)},
	})
}
