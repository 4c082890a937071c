package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"game-analytics-service/internal/access/core/domain"
	"game-analytics-service/internal/access/core/ports"
	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/pipeline"
)

var (
	ErrInvalidUser   = errors.New("username and password are required")
	ErrInvalidAccess = errors.New("invalid user access")
)

const (
	gamesPath = "/api/games"
	usersPath = "/api/admin/users"
)

var usersPaths = []string{usersPath}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

type ListAccessInput struct {
	// Keyword filters users by a case-insensitive username substring.
	Keyword string
}

type ListAccessUseCase struct {
	backend ports.AdminBackendPort
}

func NewListAccessUseCase(backend ports.AdminBackendPort) *ListAccessUseCase {
	return &ListAccessUseCase{backend: backend}
}

// Execute loads games and users in parallel. Either failure fails the whole
// listing.
func (uc *ListAccessUseCase) Execute(ctx context.Context, in ListAccessInput) (*domain.Overview, error) {
	var games, users pipeline.Value

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := uc.backend.Get(gctx, gamesPath, nil)
		if err != nil {
			return fmt.Errorf("load games: %w", err)
		}
		games = v
		return nil
	})
	g.Go(func() error {
		v, err := uc.backend.FetchFirst(gctx, usersPaths, nil)
		if err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		users = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &domain.Overview{
		Games: normalizeGames(games),
		Users: normalizeUsers(users),
	}
	if keyword := strings.ToLower(strings.TrimSpace(in.Keyword)); keyword != "" {
		out.Users = lo.Filter(out.Users, func(u domain.User, _ int) bool {
			return strings.Contains(strings.ToLower(u.Username), keyword)
		})
	}
	return out, nil
}

// ------------------------------------------------------------
// SAVE
// ------------------------------------------------------------

type SaveAccessInput struct {
	UserID  string
	GameIDs []string
}

type SaveAccessUseCase struct {
	backend ports.AdminBackendPort
}

func NewSaveAccessUseCase(backend ports.AdminBackendPort) *SaveAccessUseCase {
	return &SaveAccessUseCase{backend: backend}
}

// Execute replaces the game list of a user and returns the list stored.
func (uc *SaveAccessUseCase) Execute(ctx context.Context, in SaveAccessInput) ([]string, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, ErrInvalidAccess
	}
	gameIDs := pipeline.NormalizeUnique(in.GameIDs)

	path := usersPath + "/" + url.PathEscape(userID) + "/access"
	if _, err := uc.backend.Put(ctx, path, map[string]any{"gameIds": gameIDs}); err != nil {
		return nil, fmt.Errorf("save access for %s: %w", userID, err)
	}

	logging.Ctx(ctx).Info().Str("user", userID).Int("games", len(gameIDs)).Msg("user access saved")
	return gameIDs, nil
}

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

type CreateUserInput struct {
	Username string
	Password string
	Admin    bool
	GameIDs  []string
}

type createUserRequest struct {
	Username        string      `json:"username"`
	Password        string      `json:"password"`
	PasswordEncoded bool        `json:"passwordEncoded"`
	Role            domain.Role `json:"role"`
	GameIDs         []string    `json:"gameIds"`
}

type CreateUserUseCase struct {
	backend ports.AdminBackendPort
}

func NewCreateUserUseCase(backend ports.AdminBackendPort) *CreateUserUseCase {
	return &CreateUserUseCase{backend: backend}
}

// Execute creates an account. The password travels base64-encoded over its
// UTF-8 bytes and is flagged as such.
func (uc *CreateUserUseCase) Execute(ctx context.Context, in CreateUserInput) error {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return ErrInvalidUser
	}

	req := createUserRequest{
		Username:        username,
		Password:        base64.StdEncoding.EncodeToString([]byte(password)),
		PasswordEncoded: true,
		Role:            domain.RoleUser,
		GameIDs:         pipeline.NormalizeUnique(in.GameIDs),
	}
	if in.Admin {
		req.Role = domain.RoleAdmin
	}

	if _, err := uc.backend.Post(ctx, usersPath, req); err != nil {
		return fmt.Errorf("create user %s: %w", username, err)
	}

	logging.Ctx(ctx).Info().Str("user", username).Str("role", string(req.Role)).Msg("user created")
	return nil
}
