package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	authUC "github.com/J33rry/predusk/internal/application/usecase/auth"
	profileUC "github.com/J33rry/predusk/internal/application/usecase/profile"
	projectUC "github.com/J33rry/predusk/internal/application/usecase/project"
	searchUC "github.com/J33rry/predusk/internal/application/usecase/search"
	skillsUC "github.com/J33rry/predusk/internal/application/usecase/skills"
	"github.com/J33rry/predusk/internal/domain/event"
	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/search"
	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/internal/domain/user"
	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/auth"
	"github.com/J33rry/predusk/pkg/logger"
)

// memStore backs all fake repositories so cascades and cross-entity reads
// behave like one database.
type memStore struct {
	mu       sync.Mutex
	profiles []*profile.Profile
	projects []*project.Project
	work     []*work.WorkExperience
	users    []*user.User
}

type fakeProfileRepo struct{ s *memStore }

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.profiles {
		if existing.Email == p.Email {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		if p.UserID != nil && existing.UserID != nil && *existing.UserID == *p.UserID {
			return apperror.NewConflict("profile", "account", p.UserID.String())
		}
	}
	cp := *p
	r.s.profiles = append(r.s.profiles, &cp)
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Profile", id.String())
}

func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Profile", email)
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.UserID != nil && *p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Profile", userID.String())
}

func (r *fakeProfileRepo) First(_ context.Context) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.profiles) == 0 {
		return nil, apperror.NewNotFound("Profile", "")
	}
	cp := *r.s.profiles[0]
	return &cp, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*profile.Profile, 0, len(r.s.profiles))
	for i := len(r.s.profiles) - 1; i >= 0; i-- {
		cp := *r.s.profiles[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.profiles {
		if existing.ID == p.ID {
			cp := *p
			r.s.profiles[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("Profile", p.ID.String())
}

func (r *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.profiles {
		if existing.ID == id {
			r.s.profiles = append(r.s.profiles[:i], r.s.profiles[i+1:]...)
			kept := r.s.projects[:0]
			for _, prj := range r.s.projects {
				if prj.ProfileID != id {
					kept = append(kept, prj)
				}
			}
			r.s.projects = kept
			keptWork := r.s.work[:0]
			for _, w := range r.s.work {
				if w.ProfileID != id {
					keptWork = append(keptWork, w)
				}
			}
			r.s.work = keptWork
			return nil
		}
	}
	return apperror.NewNotFound("Profile", id.String())
}

type fakeProjectRepo struct{ s *memStore }

func (r *fakeProjectRepo) CreateBatch(_ context.Context, projects []*project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range projects {
		cp := *p
		r.s.projects = append(r.s.projects, &cp)
	}
	return nil
}

func (r *fakeProjectRepo) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*project.Project, 0)
	for _, p := range r.s.projects {
		if p.ProfileID == profileID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListAll(_ context.Context) ([]*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*project.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProjectRepo) ListBySkill(_ context.Context, skillName string) ([]*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := strings.ToLower(skillName)
	out := make([]*project.Project, 0)
	for _, p := range r.s.projects {
		for _, s := range p.Skills {
			if strings.ToLower(s) == want {
				cp := *p
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

type fakeWorkRepo struct{ s *memStore }

func (r *fakeWorkRepo) CreateBatch(_ context.Context, experiences []*work.WorkExperience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range experiences {
		cp := *w
		r.s.work = append(r.s.work, &cp)
	}
	return nil
}

func (r *fakeWorkRepo) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*work.WorkExperience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*work.WorkExperience, 0)
	for _, w := range r.s.work {
		if w.ProfileID == profileID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

type fakeSearchRepo struct{ s *memStore }

func (r *fakeSearchRepo) SearchProfiles(_ context.Context, query string) ([]search.ProfileHit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	hits := make([]search.ProfileHit, 0)
	for _, p := range r.s.profiles {
		match := containsFold(p.Name, q)
		if !match && p.Summary != nil {
			match = containsFold(*p.Summary, q)
		}
		for _, s := range p.Skills {
			if match {
				break
			}
			match = containsFold(s, q)
		}
		if match {
			hits = append(hits, search.ProfileHit{
				ID: p.ID, Name: p.Name, Email: p.Email, Summary: p.Summary, Skills: p.Skills,
			})
		}
	}
	return hits, nil
}

func (r *fakeSearchRepo) SearchProjects(_ context.Context, query string) ([]search.ProjectHit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	hits := make([]search.ProjectHit, 0)
	for _, p := range r.s.projects {
		match := containsFold(p.Title, q) || containsFold(p.Description, q)
		for _, s := range p.Skills {
			if match {
				break
			}
			match = containsFold(s, q)
		}
		if match {
			hits = append(hits, search.ProjectHit{
				ID: p.ID, Title: p.Title, Description: p.Description, Skills: p.Skills,
			})
		}
	}
	return hits, nil
}

func (r *fakeSearchRepo) SearchWork(_ context.Context, query string) ([]search.WorkHit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	hits := make([]search.WorkHit, 0)
	for _, w := range r.s.work {
		match := containsFold(w.Role, q) || containsFold(w.Company, q)
		if !match && w.Summary != nil {
			match = containsFold(*w.Summary, q)
		}
		if match {
			hits = append(hits, search.WorkHit{ID: w.ID, Role: w.Role, Company: w.Company, Summary: w.Summary})
		}
	}
	return hits, nil
}

type fakeSkillRepo struct{ s *memStore }

func (r *fakeSkillRepo) ProfileSkills(_ context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.profiles) == 0 {
		return []string{}, nil
	}
	return append([]string{}, r.s.profiles[0].Skills...), nil
}

func (r *fakeSkillRepo) ProjectSkillRows(_ context.Context) ([][]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([][]string, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		rows = append(rows, append([]string{}, p.Skills...))
	}
	return rows, nil
}

type fakeSkillsCache struct {
	mu      sync.Mutex
	ranking *skill.Ranking
	sets    int
	drops   int
}

func (c *fakeSkillsCache) Get(_ context.Context) (*skill.Ranking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ranking, nil
}

func (c *fakeSkillsCache) Set(_ context.Context, r *skill.Ranking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ranking = r
	c.sets++
	return nil
}

func (c *fakeSkillsCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ranking = nil
	c.drops++
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.ProfileEvent
}

func (p *fakePublisher) PublishProfileEvent(_ context.Context, payload event.ProfileEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("User", email)
}

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memStore
	cache  *fakeSkillsCache
	jwtSvc *auth.JWTService
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.store = &memStore{}
	s.cache = &fakeSkillsCache{}
	log := logger.NewNop()

	profileRepo := &fakeProfileRepo{s: s.store}
	projectRepo := &fakeProjectRepo{s: s.store}
	workRepo := &fakeWorkRepo{s: s.store}
	searchRepo := &fakeSearchRepo{s: s.store}
	skillRepo := &fakeSkillRepo{s: s.store}
	userRepo := &fakeUserRepo{s: s.store}
	publisher := &fakePublisher{}

	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)

	s.router = NewRouter(RouterConfig{
		ProfileHandler: NewProfileHandler(
			profileUC.NewCreateProfileUseCase(profileRepo, projectRepo, workRepo, publisher, s.cache, log),
			profileUC.NewGetProfileUseCase(profileRepo, projectRepo, workRepo, log),
			profileUC.NewListProfilesUseCase(profileRepo, projectRepo, workRepo, log),
			profileUC.NewUpdateProfileUseCase(profileRepo, projectRepo, workRepo, publisher, s.cache, log),
			profileUC.NewDeleteProfileUseCase(profileRepo, publisher, s.cache, log),
			log,
		),
		ProjectHandler: NewProjectHandler(projectUC.NewListProjectsUseCase(projectRepo, log), log),
		SearchHandler:  NewSearchHandler(searchUC.NewSearchUseCase(searchRepo, log), log),
		SkillHandler:   NewSkillHandler(skillsUC.NewTopSkillsUseCase(skillRepo, s.cache, log), log),
		AuthHandler:    NewAuthHandler(authUC.NewLoginUseCase(userRepo, s.jwtSvc, log), log),
		JWTService:     s.jwtSvc,
		Logger:         log,
	})
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *APITestSuite) decode(rr *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func fullProfileBody(email string) gin.H {
	return gin.H{
		"name":    "Ada Lovelace",
		"email":   email,
		"summary": "Backend engineer",
		"education": []gin.H{
			{"school": "Cambridge", "degree": "BSc", "startYear": "2015", "endYear": "2019"},
		},
		"skills": []string{"Go", "PostgreSQL"},
		"links":  gin.H{"github": "https://github.com/ada"},
		"projects": []gin.H{
			{
				"title":       "Analytical Engine",
				"description": "A mechanical computer",
				"skills":      []string{"Go", "Redis"},
				"links":       gin.H{"repo": "https://github.com/ada/engine"},
			},
			{
				"title":       "Notes",
				"description": "Annotated translations",
				"skills":      []string{"go"},
			},
		},
		"work": []gin.H{
			{
				"role":       "Engineer",
				"company":    "Acme",
				"summary":    "Built data pipelines",
				"highlights": []gin.H{{"bullet": "Shipped the thing"}},
			},
		},
	}
}

func (s *APITestSuite) Test_CreateProfile_ReturnsFullAggregate() {
	rr := s.do(http.MethodPost, "/api/profile", fullProfileBody("ada@example.com"))

	s.Equal(http.StatusCreated, rr.Code)
	body := s.decode(rr)
	s.Equal("Ada Lovelace", body["name"])
	s.Equal("ada@example.com", body["email"])
	s.Len(body["projects"], 2)
	s.Len(body["work"], 1)
	s.Len(body["education"], 1)
	s.NotEmpty(body["id"])
	s.NotEmpty(body["createdAt"])
}

func (s *APITestSuite) Test_CreateProfile_DuplicateEmail() {
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/profile", fullProfileBody("dup@example.com")).Code)

	rr := s.do(http.MethodPost, "/api/profile", fullProfileBody("dup@example.com"))

	s.Equal(http.StatusConflict, rr.Code)
	s.Equal("A profile with this email already exists.", s.decode(rr)["error"])
	s.Len(s.store.profiles, 1)
	s.Len(s.store.projects, 2)
}

func (s *APITestSuite) Test_CreateProfile_Validation() {
	body := fullProfileBody("valid@example.com")
	body["name"] = "  "
	rr := s.do(http.MethodPost, "/api/profile", body)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Name is required", s.decode(rr)["error"])

	body = fullProfileBody("not-an-email")
	rr = s.do(http.MethodPost, "/api/profile", body)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Invalid email", s.decode(rr)["error"])

	body = fullProfileBody("links@example.com")
	body["links"] = gin.H{"github": "not a url"}
	rr = s.do(http.MethodPost, "/api/profile", body)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Len(s.store.profiles, 0)
}

func (s *APITestSuite) Test_GetProfile_NotFound() {
	rr := s.do(http.MethodGet, "/api/profile/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("Profile not found", s.decode(rr)["error"])

	// A malformed id reads as a resource that does not exist.
	rr = s.do(http.MethodGet, "/api/profile/not-a-uuid", nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_UpdateProfile_PartialPatch() {
	created := s.decode(s.do(http.MethodPost, "/api/profile", fullProfileBody("patch@example.com")))
	id := created["id"].(string)

	rr := s.do(http.MethodPut, "/api/profile/"+id, gin.H{"summary": "Now a founder"})

	s.Equal(http.StatusOK, rr.Code)
	body := s.decode(rr)
	s.Equal("Now a founder", body["summary"])
	s.Equal("Ada Lovelace", body["name"])
	s.Equal("patch@example.com", body["email"])
	s.Len(body["projects"], 2)

	createdAt, _ := time.Parse(time.RFC3339Nano, body["createdAt"].(string))
	updatedAt, _ := time.Parse(time.RFC3339Nano, body["updatedAt"].(string))
	s.False(updatedAt.Before(createdAt))
}

func (s *APITestSuite) Test_UpdateProfile_WithoutID_PatchesEarliest() {
	first := s.decode(s.do(http.MethodPost, "/api/profile", fullProfileBody("first@example.com")))
	s.do(http.MethodPost, "/api/profile", fullProfileBody("second@example.com"))

	rr := s.do(http.MethodPut, "/api/profile", gin.H{"name": "Renamed"})

	s.Equal(http.StatusOK, rr.Code)
	body := s.decode(rr)
	s.Equal(first["id"], body["id"])
	s.Equal("Renamed", body["name"])
}

func (s *APITestSuite) Test_UpdateProfile_EmailConflict() {
	s.do(http.MethodPost, "/api/profile", fullProfileBody("a@example.com"))
	second := s.decode(s.do(http.MethodPost, "/api/profile", fullProfileBody("b@example.com")))

	rr := s.do(http.MethodPut, "/api/profile/"+second["id"].(string), gin.H{"email": "a@example.com"})

	s.Equal(http.StatusConflict, rr.Code)
}

func (s *APITestSuite) Test_DeleteProfile_Cascades() {
	created := s.decode(s.do(http.MethodPost, "/api/profile", fullProfileBody("gone@example.com")))
	id := created["id"].(string)

	rr := s.do(http.MethodDelete, "/api/profile/"+id, nil)
	s.Equal(http.StatusNoContent, rr.Code)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/profile/"+id, nil).Code)
	s.Len(s.store.projects, 0)
	s.Len(s.store.work, 0)

	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/profile/"+id, nil).Code)
}

func (s *APITestSuite) Test_ListProfiles() {
	s.do(http.MethodPost, "/api/profile", fullProfileBody("one@example.com"))
	s.do(http.MethodPost, "/api/profile", fullProfileBody("two@example.com"))

	rr := s.do(http.MethodGet, "/api/profile", nil)

	s.Equal(http.StatusOK, rr.Code)
	body := s.decode(rr)
	s.EqualValues(2, body["count"])
	s.Len(body["profiles"], 2)
}

func (s *APITestSuite) Test_ListProjects_SkillFilter() {
	s.do(http.MethodPost, "/api/profile", fullProfileBody("projects@example.com"))

	rr := s.do(http.MethodGet, "/api/projects", nil)
	body := s.decode(rr)
	s.EqualValues(2, body["count"])
	s.Nil(body["skill"])

	// Filter is exact on the element but ignores case.
	rr = s.do(http.MethodGet, "/api/projects?skill=GO", nil)
	body = s.decode(rr)
	s.EqualValues(2, body["count"])
	s.Equal("GO", body["skill"])

	rr = s.do(http.MethodGet, "/api/projects?skill=redis", nil)
	body = s.decode(rr)
	s.EqualValues(1, body["count"])

	rr = s.do(http.MethodGet, "/api/projects?skill=r", nil)
	body = s.decode(rr)
	s.EqualValues(0, body["count"])
}

func (s *APITestSuite) Test_Search() {
	s.do(http.MethodPost, "/api/profile", fullProfileBody("search@example.com"))

	rr := s.do(http.MethodGet, "/api/search", nil)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Query parameter 'q' is required", s.decode(rr)["error"])

	rr = s.do(http.MethodGet, "/api/search?q=ENGINE", nil)
	s.Equal(http.StatusOK, rr.Code)
	body := s.decode(rr)
	counts := body["counts"].(map[string]any)
	s.EqualValues(1, counts["profiles"]) // matches "Backend engineer"
	s.EqualValues(1, counts["projects"])
	s.EqualValues(1, counts["work"]) // matches role "Engineer"
	s.EqualValues(3, counts["total"])

	rr = s.do(http.MethodGet, "/api/search?q=zzzznothing", nil)
	s.Equal(http.StatusOK, rr.Code)
	counts = s.decode(rr)["counts"].(map[string]any)
	s.EqualValues(0, counts["total"])
}

func (s *APITestSuite) Test_TopSkills() {
	s.do(http.MethodPost, "/api/profile", fullProfileBody("skills@example.com"))

	rr := s.do(http.MethodGet, "/api/skills/top", nil)
	s.Equal(http.StatusOK, rr.Code)

	var ranking skill.Ranking
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &ranking))

	// Profile: Go, PostgreSQL (x2). Projects: Go, Redis, go (x1 each).
	s.EqualValues(3, ranking.TotalUniqueSkills)
	s.Require().Len(ranking.TopSkills, 3)
	s.Equal(skill.Count{Skill: "Go", Count: 4}, ranking.TopSkills[0])
	s.Equal(skill.Count{Skill: "Postgresql", Count: 2}, ranking.TopSkills[1])
	s.Equal(skill.Count{Skill: "Redis", Count: 1}, ranking.TopSkills[2])

	// The ranking is cached; writes drop it.
	s.NotNil(s.cache.ranking)
	s.do(http.MethodPost, "/api/profile", fullProfileBody("other@example.com"))
	s.Nil(s.cache.ranking)
}

func (s *APITestSuite) seedUser(email, password string) *user.User {
	hash, err := auth.HashPassword(password)
	s.Require().NoError(err)
	u := &user.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	s.store.users = append(s.store.users, u)
	return u
}

func (s *APITestSuite) Test_Login_And_OwnProfile() {
	u := s.seedUser("owner@example.com", "s3cret-pass")

	rr := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": u.Email, "password": "wrong"})
	s.Equal(http.StatusUnauthorized, rr.Code)
	s.Equal("Invalid credentials", s.decode(rr)["error"])

	rr = s.do(http.MethodPost, "/api/auth/login", gin.H{"email": u.Email, "password": "s3cret-pass"})
	s.Require().Equal(http.StatusOK, rr.Code)
	token := s.decode(rr)["access_token"].(string)
	s.NotEmpty(token)

	bearer := fmt.Sprintf("Bearer %s", token)

	// Creating with a valid token binds the profile to the account.
	rr = s.do(http.MethodPost, "/api/profile", fullProfileBody("owner-profile@example.com"), "Authorization", bearer)
	s.Require().Equal(http.StatusCreated, rr.Code)

	rr = s.do(http.MethodGet, "/api/me/profile", nil, "Authorization", bearer)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("owner-profile@example.com", s.decode(rr)["email"])

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/me/profile", nil).Code)

	// One profile per account.
	rr = s.do(http.MethodPost, "/api/profile", fullProfileBody("another@example.com"), "Authorization", bearer)
	s.Equal(http.StatusConflict, rr.Code)
	s.Equal("A profile with this account already exists.", s.decode(rr)["error"])
}

func (s *APITestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("UP", s.decode(rr)["status"])
}
