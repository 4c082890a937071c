package fiber

import (
	"game-analytics-service/internal/access/core/domain"
	"game-analytics-service/internal/pipeline"
)

type UserResponse struct {
	ID       string   `json:"id" example:"alice"`
	Username string   `json:"username" example:"alice"`
	GameIDs  []string `json:"gameIds"`
}

type AccessResponse struct {
	Games []pipeline.Option `json:"games"`
	Users []UserResponse    `json:"users"`
}

type SaveAccessRequest struct {
	GameIDs []string `json:"gameIds" validate:"dive,max=128"`
}

type SaveAccessResponse struct {
	UserID  string   `json:"userId" example:"alice"`
	GameIDs []string `json:"gameIds"`
}

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,max=64" example:"alice"`
	Password string   `json:"password" validate:"required,max=256"`
	Admin    bool     `json:"admin"`
	GameIDs  []string `json:"gameIds" validate:"dive,max=128"`
}

type CreateUserResponse struct {
	Status string `json:"status" example:"created"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_body"`
	Message string `json:"message,omitempty" example:"username and password are required"`
}

func toAccessResponse(o *domain.Overview) AccessResponse {
	resp := AccessResponse{
		Games: o.Games,
		Users: make([]UserResponse, 0, len(o.Users)),
	}
	if resp.Games == nil {
		resp.Games = []pipeline.Option{}
	}
	for _, u := range o.Users {
		ids := u.GameIDs
		if ids == nil {
			ids = []string{}
		}
		resp.Users = append(resp.Users, UserResponse{ID: u.ID, Username: u.Username, GameIDs: ids})
	}
	return resp
}
