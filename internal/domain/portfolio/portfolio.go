package portfolio

import (
	"fmt"

	"github.com/kailas-cloud/pagedex/internal/domain"
)

// Data is the portfolio document.
type Data struct {
	Technologies            []Technology `json:"technologies"`
	ProfessionalExperiences []Experience `json:"professionalExperiences"`
	PersonalExperiences     []Experience `json:"personalExperiences"`
}

// Technology is a tool or language a project was built with.
type Technology struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	IconSrc string `json:"iconSrc"`
}

// Experience groups projects under an employer or a personal context.
// Description may contain author-supplied HTML.
type Experience struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	Projects    []Project `json:"projects"`
}

// Project is one piece of work inside an experience.
type Project struct {
	Name          string   `json:"name"`
	SiteURL       string   `json:"siteUrl,omitempty"`
	RepositoryURL string   `json:"repositoryUrl,omitempty"`
	Description   string   `json:"description"`
	Missions      []string `json:"missions,omitempty"`
	TechnologyIDs []int    `json:"technologyIds"`
}

// Page is the portfolio with technology references resolved.
type Page struct {
	Professional []ExperienceView `json:"professionalExperiences"`
	Personal     []ExperienceView `json:"personalExperiences"`
}

// ExperienceView is an experience ready to render.
type ExperienceView struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Link        string        `json:"link,omitempty"`
	Projects    []ProjectView `json:"projects"`
}

// ProjectView is a project with its technologies resolved.
type ProjectView struct {
	Name          string       `json:"name"`
	SiteURL       string       `json:"siteUrl,omitempty"`
	RepositoryURL string       `json:"repositoryUrl,omitempty"`
	Description   string       `json:"description"`
	Missions      []string     `json:"missions,omitempty"`
	Technologies  []Technology `json:"technologies"`
}

// Resolve builds the page, replacing technology ids with their declarations.
// A project referencing an undeclared technology yields ErrUnknownTechnology.
// When an id is declared twice the first declaration is used.
func (d *Data) Resolve() (Page, error) {
	byID := make(map[int]Technology, len(d.Technologies))
	for _, t := range d.Technologies {
		if _, ok := byID[t.ID]; ok {
			continue
		}
		byID[t.ID] = t
	}

	professional, err := resolveExperiences(d.ProfessionalExperiences, byID)
	if err != nil {
		return Page{}, err
	}
	personal, err := resolveExperiences(d.PersonalExperiences, byID)
	if err != nil {
		return Page{}, err
	}
	return Page{Professional: professional, Personal: personal}, nil
}

func resolveExperiences(exps []Experience, byID map[int]Technology) ([]ExperienceView, error) {
	out := make([]ExperienceView, 0, len(exps))
	for _, e := range exps {
		view := ExperienceView{
			Name:        e.Name,
			Description: e.Description,
			Link:        e.Link,
			Projects:    make([]ProjectView, 0, len(e.Projects)),
		}
		for _, p := range e.Projects {
			techs := make([]Technology, 0, len(p.TechnologyIDs))
			for _, id := range p.TechnologyIDs {
				t, ok := byID[id]
				if !ok {
					return nil, fmt.Errorf("%w: id %d in project %q", domain.ErrUnknownTechnology, id, p.Name)
				}
				techs = append(techs, t)
			}
			view.Projects = append(view.Projects, ProjectView{
				Name:          p.Name,
				SiteURL:       p.SiteURL,
				RepositoryURL: p.RepositoryURL,
				Description:   p.Description,
				Missions:      p.Missions,
				Technologies:  techs,
			})
		}
		out = append(out, view)
	}
	return out, nil
}
