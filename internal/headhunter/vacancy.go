package headhunter

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicy   = bluemonday.StrictPolicy()
	blockTags    = regexp.MustCompile(`(?i)<\s*(br|/p|/li|/ul|/ol|/h[1-6]|/div)\s*/?>`)
	listItemTags = regexp.MustCompile(`(?i)<\s*li[^>]*>`)
)

type Vacancy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Area struct {
		Name string `json:"name,omitempty"`
	} `json:"area,omitempty"`
	Salary struct {
		From     int    `json:"from,omitempty"`
		To       int    `json:"to,omitempty"`
		Currency string `json:"currency,omitempty"`
	} `json:"salary,omitempty"`
	Experience struct {
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Schedule struct {
		Name string `json:"name,omitempty"`
	} `json:"schedule,omitempty"`
	Employment struct {
		Name string `json:"name,omitempty"`
	} `json:"employment,omitempty"`
	Employer struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Description  string `json:"description,omitempty"`
	KeySkills    []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
	Archived bool `json:"archived,omitempty"`
}

func (c *Client) GetVacancy(ctx context.Context, id string) (*Vacancy, error) {
	if id = strings.TrimSpace(id); id == "" {
		return nil, fmt.Errorf("vacancy id is required")
	}

	raw, err := c.getObject(ctx, fmt.Sprintf("%s/vacancies/%s", c.APIURL, id))
	if err != nil {
		return nil, fmt.Errorf("get vacancy %s: %w", id, err)
	}

	var vacancy Vacancy
	if err := decode(raw, &vacancy); err != nil {
		return nil, fmt.Errorf("decode vacancy %s: %w", id, err)
	}

	if vacancy.Archived {
		c.logger.Warn("vacancy is archived")
	}

	return &vacancy, nil
}

// JobDescription renders the vacancy as plain text. The HTML description is
// reduced to text with list items and paragraphs kept on separate lines.
func (va *Vacancy) JobDescription() string {
	var b strings.Builder

	writeLine(&b, "Position", va.Name)
	writeLine(&b, "Company", va.Employer.Name)
	writeLine(&b, "Location", va.Area.Name)
	writeLine(&b, "Salary", va.salary())
	writeLine(&b, "Experience", va.Experience.Name)
	writeLine(&b, "Schedule", va.Schedule.Name)
	writeLine(&b, "Employment", va.Employment.Name)

	if len(va.KeySkills) > 0 {
		skills := make([]string, 0, len(va.KeySkills))
		for _, s := range va.KeySkills {
			skills = append(skills, s.Name)
		}
		writeLine(&b, "Key skills", strings.Join(skills, ", "))
	}

	if desc := PlainText(va.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
	}

	return strings.TrimSpace(b.String())
}

func (va *Vacancy) salary() string {
	s := va.Salary
	switch {
	case s.From > 0 && s.To > 0:
		return fmt.Sprintf("%d-%d %s", s.From, s.To, s.Currency)
	case s.From > 0:
		return fmt.Sprintf("from %d %s", s.From, s.Currency)
	case s.To > 0:
		return fmt.Sprintf("up to %d %s", s.To, s.Currency)
	default:
		return ""
	}
}

// PlainText strips every HTML tag from s and collapses blank lines.
func PlainText(s string) string {
	s = blockTags.ReplaceAllString(s, "\n")
	s = listItemTags.ReplaceAllString(s, "- ")
	s = html.UnescapeString(htmlPolicy.Sanitize(s))

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
