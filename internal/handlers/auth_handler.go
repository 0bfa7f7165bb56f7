package handlers

import (
	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var details []string
	if request.Username == "" {
		details = append(details, "Username is required")
	}
	if request.Password == "" {
		details = append(details, "Password is required")
	}
	if len(details) > 0 {
		return respondError(c, apperror.NewValidation(details))
	}

	if err := h.auth.Register(c.Context(), request.Username, request.Password); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	token, user, err := h.auth.Login(c.Context(), request.Username, request.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID.Hex(),
			"username": user.Username,
		},
	})
}
