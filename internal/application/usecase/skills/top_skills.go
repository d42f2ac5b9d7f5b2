package skills

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/pkg/logger"
)

const (
	// A skill declared on the profile outweighs one merely used in a
	// project.
	profileSkillWeight = 2
	projectSkillWeight = 1
	topSkillsLimit     = 10
)

type TopSkillsUseCase struct {
	skillRepo skill.Repository
	cache     skill.Cache
	logger    logger.Logger
}

func NewTopSkillsUseCase(sRepo skill.Repository, cache skill.Cache, log logger.Logger) *TopSkillsUseCase {
	return &TopSkillsUseCase{
		skillRepo: sRepo,
		cache:     cache,
		logger:    log,
	}
}

type TopSkillsOutput struct {
	Ranking *skill.Ranking
}

// Execute serves the ranking from cache when possible. Cache failures fall
// back to recomputation.
func (uc *TopSkillsUseCase) Execute(ctx context.Context) (*TopSkillsOutput, error) {
	cached, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warn("Failed to read skills cache", zap.Error(err))
	}
	if cached != nil {
		return &TopSkillsOutput{Ranking: cached}, nil
	}

	ranking, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, ranking); err != nil {
		uc.logger.Warn("Failed to write skills cache", zap.Error(err))
	}

	return &TopSkillsOutput{Ranking: ranking}, nil
}

// Refresh recomputes the ranking and overwrites the cache. The worker calls
// this when it consumes a profile event.
func (uc *TopSkillsUseCase) Refresh(ctx context.Context) (*skill.Ranking, error) {
	ranking, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, ranking); err != nil {
		uc.logger.Warn("Failed to write skills cache", zap.Error(err))
	}
	return ranking, nil
}

func (uc *TopSkillsUseCase) compute(ctx context.Context) (*skill.Ranking, error) {
	profileSkills, err := uc.skillRepo.ProfileSkills(ctx)
	if err != nil {
		return nil, err
	}
	projectRows, err := uc.skillRepo.ProjectSkillRows(ctx)
	if err != nil {
		return nil, err
	}

	// Counting key is the lowercased skill. Keys keep first-seen order so
	// that ties resolve the same way on every call: profile skills first,
	// then project rows in scan order.
	counts := make(map[string]int)
	order := make([]string, 0)

	add := func(raw string, weight int) {
		key := strings.ToLower(raw)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key] += weight
	}

	for _, s := range profileSkills {
		add(s, profileSkillWeight)
	}
	for _, row := range projectRows {
		for _, s := range row {
			add(s, projectSkillWeight)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := topSkillsLimit
	if len(order) < limit {
		limit = len(order)
	}

	top := make([]skill.Count, limit)
	for i := 0; i < limit; i++ {
		top[i] = skill.Count{
			Skill: capitalize(order[i]),
			Count: counts[order[i]],
		}
	}

	return &skill.Ranking{
		TopSkills:         top,
		TotalUniqueSkills: len(counts),
	}, nil
}

// capitalize upper-cases the first rune of the already-lowercased key, so
// "python" displays as "Python" whatever casing was stored.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
