package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/api/dto"
	"github.com/jobboard/jobboard-api/internal/service"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// UsersHandler exposes user account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.Username, req.Password, req.FirstName, req.LastName, req.Email) {
		return apperrors.NewValidationError("username, password, first_name, last_name, email required", nil)
	}

	user, err := h.users.Create(c.UserContext(), service.UserCreateInput{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Photo:          req.Photo,
		CurrentCompany: req.CurrentCompany,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	users, err := h.users.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserList(users))
}

// Get handles GET /users/:username.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Update handles PATCH /users/:username.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := service.UserUpdateInput{
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Photo:          req.Photo,
		CurrentCompany: req.CurrentCompany,
	}
	if input == (service.UserUpdateInput{}) {
		return apperrors.NewValidationError("no fields to update", nil)
	}

	user, err := h.users.Update(c.UserContext(), c.Params("username"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:username.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	user, err := h.users.Delete(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Applications handles GET /users/:username/applications.
func (h *UsersHandler) Applications(c *fiber.Ctx) error {
	apps, err := h.users.Applications(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationList(apps))
}
