package domain

import "game-analytics-service/internal/pipeline"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is an account and the games it may open.
type User struct {
	ID       string
	Username string
	GameIDs  []string
}

// Overview is what the admin screen lists: every game and every user.
type Overview struct {
	Games []pipeline.Option
	Users []User
}
