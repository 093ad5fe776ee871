package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"
)

type AddSkillInput struct {
	Name        string
	Description string
	Category    string
	Difficulty  string
	Location    string
}

type SkillUsecase interface {
	SearchSkills(ctx context.Context, query string, limit int) ([]skill.Skill, error)
	AddSkill(ctx context.Context, in AddSkillInput) (skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) SearchSkills(ctx context.Context, query string, limit int) ([]skill.Skill, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.SearchSkills(ctx, normalizeSearchValue(query), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return items, nil
}

func (u *Skill) AddSkill(ctx context.Context, in AddSkillInput) (skill.Skill, error) {
	name := strings.Join(strings.Fields(in.Name), " ")
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, skill.Skill{
		Name:        name,
		Description: optionalText(in.Description),
		Category:    optionalText(in.Category),
		Difficulty:  optionalText(in.Difficulty),
		Location:    optionalText(in.Location),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNameTaken) {
			return skill.Skill{}, ErrSkillAlreadyExists
		}
		return skill.Skill{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return created, nil
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
