package project

import (
	"encoding/json"
	"strings"
)

// CreateInput is the normalized form payload for a new project. Technologies
// is already parsed into an ordered list by the time the service sees it.
type CreateInput struct {
	Title        string
	Description  string
	Technologies []string
	Image        string
	GithubURL    string
	DemoURL      string
	Role         string
	IsMini       bool
}

// UpdateInput carries only the fields present in the request; nil means
// "leave unchanged".
type UpdateInput struct {
	Title        *string
	Description  *string
	Technologies []string
	Image        *string
	GithubURL    *string
	DemoURL      *string
	Role         *string
	IsMini       *bool
}

// ParseTechnologies accepts either a JSON array of strings or a
// comma-separated string and returns the ordered list. The two shapes coexist
// at the boundary because the admin UI sends whichever it has.
func ParseTechnologies(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return trimNonEmpty(list)
		}
		return nil
	}

	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
