package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"game-analytics-service/internal/access/core/domain"
	"game-analytics-service/internal/access/core/usecase"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/logging"
)

const unreachableMessage = "Cannot reach API. Make sure backend is running."

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type ListAccessUseCase interface {
	Execute(ctx context.Context, in usecase.ListAccessInput) (*domain.Overview, error)
}

type SaveAccessUseCase interface {
	Execute(ctx context.Context, in usecase.SaveAccessInput) ([]string, error)
}

type CreateUserUseCase interface {
	Execute(ctx context.Context, in usecase.CreateUserInput) error
}

type AccessHandler struct {
	list   ListAccessUseCase
	save   SaveAccessUseCase
	create CreateUserUseCase
}

func NewAccessHandler(list ListAccessUseCase, save SaveAccessUseCase, create CreateUserUseCase) *AccessHandler {
	return &AccessHandler{list: list, save: save, create: create}
}

func (h *AccessHandler) Register(r fiber.Router) {
	r.Get("/admin/access", h.ListAccess)
	r.Put("/admin/users/:id/access", h.SaveAccess)
	r.Post("/admin/users", h.CreateUser)
}

// ListAccess godoc
// @Summary List games and user access
// @Description Returns every game and every user with the games they may open
// @Tags Admin
// @Produce json
// @Param search query string false "Case-insensitive username filter"
// @Success 200 {object} AccessResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/access [get]
func (h *AccessHandler) ListAccess(c *fiber.Ctx) error {
	out, err := h.list.Execute(c.UserContext(), usecase.ListAccessInput{Keyword: c.Query("search")})
	if err != nil {
		return writeError(c, "load failed", err)
	}
	return c.Status(http.StatusOK).JSON(toAccessResponse(out))
}

// SaveAccess godoc
// @Summary Save user game access
// @Description Replaces the list of games a user may open
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param body body SaveAccessRequest true "Allowed games"
// @Success 200 {object} SaveAccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/users/{id}/access [put]
func (h *AccessHandler) SaveAccess(c *fiber.Ctx) error {
	var req SaveAccessRequest
	if err := bindBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	userID := c.Params("id")
	saved, err := h.save.Execute(c.UserContext(), usecase.SaveAccessInput{
		UserID:  userID,
		GameIDs: req.GameIDs,
	})
	if err != nil {
		return writeError(c, "save failed for "+userID, err)
	}
	return c.Status(http.StatusOK).JSON(SaveAccessResponse{UserID: userID, GameIDs: saved})
}

// CreateUser godoc
// @Summary Create a user
// @Description Creates an account with a role and its allowed games
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "New user"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/users [post]
func (h *AccessHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := bindBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	err := h.create.Execute(c.UserContext(), usecase.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Admin:    req.Admin,
		GameIDs:  req.GameIDs,
	})
	if err != nil {
		return writeError(c, "create user failed", err)
	}
	return c.Status(http.StatusCreated).JSON(CreateUserResponse{Status: "created"})
}

// bindBody decodes and validates a JSON body.
func bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	err := getValidator().Struct(dst)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(fields, "; "))
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_body",
		Message: err.Error(),
	})
}

func writeError(c *fiber.Ctx, action string, err error) error {
	var se *datasource.StatusError
	switch {
	case errors.Is(err, usecase.ErrInvalidUser),
		errors.Is(err, usecase.ErrInvalidAccess):
		return badRequest(c, err)
	case errors.As(err, &se):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: action + ": " + se.Message,
		})
	case errors.Is(err, datasource.ErrUnavailable):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "upstream_unavailable",
			Message: unreachableMessage,
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("admin request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
