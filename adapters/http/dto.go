package http

import (
	"time"

	"github.com/google/uuid"

	profileUC "github.com/J33rry/predusk/internal/application/usecase/profile"
	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/search"
	"github.com/J33rry/predusk/internal/domain/work"
)

// Request DTOs

type EducationEntryRequest struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Area      string `json:"area"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

type ProfileLinksRequest struct {
	GitHub    *string  `json:"github"`
	LinkedIn  *string  `json:"linkedin"`
	Portfolio *string  `json:"portfolio"`
	Other     []string `json:"other"`
}

type ProjectLinksRequest struct {
	Demo  *string  `json:"demo"`
	Repo  *string  `json:"repo"`
	Docs  *string  `json:"docs"`
	Other []string `json:"other"`
}

type ProjectRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Links       ProjectLinksRequest `json:"links"`
	Skills      []string            `json:"skills"`
}

type WorkHighlightRequest struct {
	Bullet string `json:"bullet"`
}

type WorkExperienceRequest struct {
	Role       string                 `json:"role"`
	Company    string                 `json:"company"`
	Location   *string                `json:"location"`
	StartDate  *string                `json:"startDate"`
	EndDate    *string                `json:"endDate"`
	Summary    *string                `json:"summary"`
	Highlights []WorkHighlightRequest `json:"highlights"`
}

// CreateProfileRequest is the full-profile submission: profile fields plus
// optional nested projects and work experiences, inserted together.
type CreateProfileRequest struct {
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Summary   *string                 `json:"summary"`
	Education []EducationEntryRequest `json:"education"`
	Skills    []string                `json:"skills"`
	Links     ProfileLinksRequest     `json:"links"`
	Projects  []ProjectRequest        `json:"projects"`
	Work      []WorkExperienceRequest `json:"work"`
}

// UpdateProfileRequest is a partial patch: only non-nil fields change.
type UpdateProfileRequest struct {
	Name      *string                  `json:"name"`
	Email     *string                  `json:"email"`
	Summary   *string                  `json:"summary"`
	Education *[]EducationEntryRequest `json:"education"`
	Skills    *[]string                `json:"skills"`
	Links     *ProfileLinksRequest     `json:"links"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Request conversions

func (req *CreateProfileRequest) ToInput(userID *uuid.UUID) profileUC.CreateProfileInput {
	input := profileUC.CreateProfileInput{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Summary:   req.Summary,
		Education: toEducationEntries(req.Education),
		Skills:    req.Skills,
		Links:     req.Links.toDomain(),
	}

	input.Projects = make([]profileUC.ProjectInput, len(req.Projects))
	for i, p := range req.Projects {
		input.Projects[i] = profileUC.ProjectInput{
			Title:       p.Title,
			Description: p.Description,
			Links:       p.Links.toDomain(),
			Skills:      p.Skills,
		}
	}

	input.Work = make([]profileUC.WorkInput, len(req.Work))
	for i, w := range req.Work {
		input.Work[i] = profileUC.WorkInput{
			Role:       w.Role,
			Company:    w.Company,
			Location:   w.Location,
			StartDate:  w.StartDate,
			EndDate:    w.EndDate,
			Summary:    w.Summary,
			Highlights: toHighlights(w.Highlights),
		}
	}

	return input
}

func (req *UpdateProfileRequest) ToInput(profileID *uuid.UUID) profileUC.UpdateProfileInput {
	input := profileUC.UpdateProfileInput{
		ProfileID: profileID,
		Name:      req.Name,
		Email:     req.Email,
		Summary:   req.Summary,
	}
	if req.Education != nil {
		entries := toEducationEntries(*req.Education)
		input.Education = &entries
	}
	if req.Skills != nil {
		input.Skills = req.Skills
	}
	if req.Links != nil {
		links := req.Links.toDomain()
		input.Links = &links
	}
	return input
}

func (r ProfileLinksRequest) toDomain() profile.Links {
	return profile.Links{
		GitHub:    r.GitHub,
		LinkedIn:  r.LinkedIn,
		Portfolio: r.Portfolio,
		Other:     r.Other,
	}
}

func (r ProjectLinksRequest) toDomain() project.Links {
	return project.Links{
		Demo:  r.Demo,
		Repo:  r.Repo,
		Docs:  r.Docs,
		Other: r.Other,
	}
}

func toEducationEntries(entries []EducationEntryRequest) []profile.EducationEntry {
	out := make([]profile.EducationEntry, len(entries))
	for i, e := range entries {
		out[i] = profile.EducationEntry{
			School:    e.School,
			Degree:    e.Degree,
			Area:      e.Area,
			StartYear: e.StartYear,
			EndYear:   e.EndYear,
		}
	}
	return out
}

func toHighlights(highlights []WorkHighlightRequest) []work.Highlight {
	out := make([]work.Highlight, len(highlights))
	for i, h := range highlights {
		out[i] = work.Highlight{Bullet: h.Bullet}
	}
	return out
}

// Response DTOs

type ProjectDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Links       project.Links `json:"links"`
	Skills      []string      `json:"skills"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type WorkExperienceDTO struct {
	ID         string           `json:"id"`
	Role       string           `json:"role"`
	Company    string           `json:"company"`
	Location   *string          `json:"location"`
	StartDate  *string          `json:"startDate"`
	EndDate    *string          `json:"endDate"`
	Summary    *string          `json:"summary"`
	Highlights []work.Highlight `json:"highlights"`
}

type ProfileDTO struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Summary   *string                  `json:"summary"`
	Education []profile.EducationEntry `json:"education"`
	Skills    []string                 `json:"skills"`
	Links     profile.Links            `json:"links"`
	Projects  []ProjectDTO             `json:"projects"`
	Work      []WorkExperienceDTO      `json:"work"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type ProfileListResponse struct {
	Profiles []ProfileDTO `json:"profiles"`
	Count    int          `json:"count"`
}

type ProjectListResponse struct {
	Count    int          `json:"count"`
	Skill    *string      `json:"skill"`
	Projects []ProjectDTO `json:"projects"`
}

type SearchResultsDTO struct {
	Profiles []search.ProfileHit `json:"profiles"`
	Projects []search.ProjectHit `json:"projects"`
	Work     []search.WorkHit    `json:"work"`
}

type SearchCountsDTO struct {
	Profiles int `json:"profiles"`
	Projects int `json:"projects"`
	Work     int `json:"work"`
	Total    int `json:"total"`
}

type SearchResponse struct {
	Query   string           `json:"query"`
	Results SearchResultsDTO `json:"results"`
	Counts  SearchCountsDTO  `json:"counts"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Links:       p.Links,
		Skills:      p.Skills,
		CreatedAt:   p.CreatedAt,
	}
}

func ToWorkExperienceDTO(w *work.WorkExperience) WorkExperienceDTO {
	return WorkExperienceDTO{
		ID:         w.ID.String(),
		Role:       w.Role,
		Company:    w.Company,
		Location:   w.Location,
		StartDate:  w.StartDate,
		EndDate:    w.EndDate,
		Summary:    w.Summary,
		Highlights: w.Highlights,
	}
}

func ToProfileDTO(agg *profileUC.Aggregate) ProfileDTO {
	p := agg.Profile

	projects := make([]ProjectDTO, len(agg.Projects))
	for i, prj := range agg.Projects {
		projects[i] = ToProjectDTO(prj)
	}

	experiences := make([]WorkExperienceDTO, len(agg.Work))
	for i, w := range agg.Work {
		experiences[i] = ToWorkExperienceDTO(w)
	}

	return ProfileDTO{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		Summary:   p.Summary,
		Education: p.Education,
		Skills:    p.Skills,
		Links:     p.Links,
		Projects:  projects,
		Work:      experiences,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
