package domain

import "time"

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Technologies []string  `json:"technologies"`
	Image        string    `json:"image"`
	GithubURL    string    `json:"github_url"`
	DemoURL      string    `json:"demo_url"`
	Role         string    `json:"role,omitempty"`
	IsMini       bool      `json:"is_mini"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
