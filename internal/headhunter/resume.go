package headhunter

import (
	"context"
	"fmt"
	"strings"
)

type ResumeDetails struct {
	ID    string
	Title string
	Raw   map[string]any

	profile resumeProfile
}

type resumeProfile struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Title           string   `json:"title"`
	Skills          string   `json:"skills"`
	SkillSet        []string `json:"skill_set"`
	TotalExperience struct {
		Months int `json:"months"`
	} `json:"total_experience"`
	Experience []struct {
		Company     string `json:"company"`
		Position    string `json:"position"`
		Start       string `json:"start"`
		End         string `json:"end"`
		Description string `json:"description"`
	} `json:"experience"`
	Education struct {
		Primary []struct {
			Name         string `json:"name"`
			Organization string `json:"organization"`
			Year         int    `json:"year"`
		} `json:"primary"`
	} `json:"education"`
	Language []struct {
		Name  string `json:"name"`
		Level struct {
			Name string `json:"name"`
		} `json:"level"`
	} `json:"language"`
}

func (c *Client) GetResumeDetails(ctx context.Context, id string) (*ResumeDetails, error) {
	if id = strings.TrimSpace(id); id == "" {
		return nil, fmt.Errorf("resume id is required")
	}

	raw, err := c.getObject(ctx, fmt.Sprintf("%s/resumes/%s", c.APIURL, id))
	if err != nil {
		return nil, fmt.Errorf("get resume %s: %w", id, err)
	}

	details := &ResumeDetails{
		ID:    valueAsString(raw["id"]),
		Title: valueAsString(raw["title"]),
		Raw:   raw,
	}
	if err := decode(raw, &details.profile); err != nil {
		return nil, fmt.Errorf("decode resume %s: %w", id, err)
	}

	return details, nil
}

// Text renders the resume in the plain form used by the evaluation prompt.
func (r *ResumeDetails) Text() string {
	p := r.profile
	var b strings.Builder

	title := p.Title
	if title == "" {
		title = r.Title
	}
	writeLine(&b, "Position", title)
	writeLine(&b, "Candidate", strings.TrimSpace(p.FirstName+" "+p.LastName))
	if months := p.TotalExperience.Months; months > 0 {
		writeLine(&b, "Total experience", fmt.Sprintf("%d years %d months", months/12, months%12))
	}
	if len(p.SkillSet) > 0 {
		writeLine(&b, "Key skills", strings.Join(p.SkillSet, ", "))
	}

	if len(p.Experience) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range p.Experience {
			end := exp.End
			if end == "" {
				end = "present"
			}
			fmt.Fprintf(&b, "- %s at %s (%s - %s)\n", exp.Position, exp.Company, exp.Start, end)
			if desc := strings.TrimSpace(exp.Description); desc != "" {
				b.WriteString(indent(desc))
			}
		}
	}

	if len(p.Education.Primary) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range p.Education.Primary {
			fmt.Fprintf(&b, "- %s, %s (%d)\n", edu.Name, edu.Organization, edu.Year)
		}
	}

	if len(p.Language) > 0 {
		langs := make([]string, 0, len(p.Language))
		for _, l := range p.Language {
			langs = append(langs, fmt.Sprintf("%s (%s)", l.Name, l.Level.Name))
		}
		b.WriteString("\n")
		writeLine(&b, "Languages", strings.Join(langs, ", "))
	}

	if about := strings.TrimSpace(p.Skills); about != "" {
		b.WriteString("\nAbout:\n")
		b.WriteString(about)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func writeLine(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func indent(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func valueAsString(v any) string {
	if v == nil {
		return ""
	}

	switch typed := v.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
