package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

func isURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

// validateLink accepts nil (field absent or explicit null); a present value
// must be a well-formed URL.
func validateLink(value *string, field string, errs []string) []string {
	if value != nil && !isURL(*value) {
		errs = append(errs, "Invalid URL for "+field)
	}
	return errs
}

func (r ProfileLinksRequest) validate(errs []string) []string {
	errs = validateLink(r.GitHub, "github", errs)
	errs = validateLink(r.LinkedIn, "linkedin", errs)
	errs = validateLink(r.Portfolio, "portfolio", errs)
	for _, u := range r.Other {
		if !isURL(u) {
			errs = append(errs, "Invalid URL in links")
		}
	}
	return errs
}

func (r ProjectLinksRequest) validate(errs []string) []string {
	errs = validateLink(r.Demo, "demo", errs)
	errs = validateLink(r.Repo, "repo", errs)
	errs = validateLink(r.Docs, "docs", errs)
	for _, u := range r.Other {
		if !isURL(u) {
			errs = append(errs, "Invalid URL in links")
		}
	}
	return errs
}

func validateEducation(entries []EducationEntryRequest, errs []string) []string {
	for _, e := range entries {
		if isBlank(e.School) {
			errs = append(errs, "School is required")
		}
	}
	return errs
}

// Validate returns field-level error messages; an empty slice means the
// payload is acceptable.
func (req *ProjectRequest) Validate() []string {
	var errs []string
	if isBlank(req.Title) {
		errs = append(errs, "Title is required")
	}
	if isBlank(req.Description) {
		errs = append(errs, "Description is required")
	}
	errs = req.Links.validate(errs)
	return errs
}

func (req *WorkExperienceRequest) Validate() []string {
	var errs []string
	if isBlank(req.Role) {
		errs = append(errs, "Role is required")
	}
	if isBlank(req.Company) {
		errs = append(errs, "Company is required")
	}
	for _, h := range req.Highlights {
		if isBlank(h.Bullet) {
			errs = append(errs, "Highlight bullet is required")
		}
	}
	return errs
}

// Validate covers the whole submission. Any failing nested project or work
// entry rejects the entire payload; nothing is partially inserted.
func (req *CreateProfileRequest) Validate() []string {
	var errs []string
	if isBlank(req.Name) {
		errs = append(errs, "Name is required")
	}
	if !isEmail(req.Email) {
		errs = append(errs, "Invalid email")
	}
	errs = validateEducation(req.Education, errs)
	errs = req.Links.validate(errs)

	for _, p := range req.Projects {
		errs = append(errs, p.Validate()...)
	}
	for _, w := range req.Work {
		errs = append(errs, w.Validate()...)
	}
	return errs
}

func (req *UpdateProfileRequest) Validate() []string {
	var errs []string
	if req.Name != nil && isBlank(*req.Name) {
		errs = append(errs, "Name is required")
	}
	if req.Email != nil && !isEmail(*req.Email) {
		errs = append(errs, "Invalid email")
	}
	if req.Education != nil {
		errs = validateEducation(*req.Education, errs)
	}
	if req.Links != nil {
		errs = req.Links.validate(errs)
	}
	return errs
}

func (req *LoginRequest) Validate() []string {
	var errs []string
	if !isEmail(req.Email) {
		errs = append(errs, "Invalid email")
	}
	if isBlank(req.Password) {
		errs = append(errs, "Password is required")
	}
	return errs
}
