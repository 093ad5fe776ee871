package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSkillRepo struct {
	query     string
	limit     int
	items     []skill.Skill
	created   []skill.Skill
	searchErr error
	createErr error
}

func (m *mockSkillRepo) SearchSkills(_ context.Context, query string, limit int) ([]skill.Skill, error) {
	m.query, m.limit = query, limit
	return m.items, m.searchErr
}

func (m *mockSkillRepo) CreateSkill(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if m.createErr != nil {
		return skill.Skill{}, m.createErr
	}
	m.created = append(m.created, s)
	return s, nil
}

func TestSkill_SearchNormalizesQuery(t *testing.T) {
	repo := &mockSkillRepo{items: []skill.Skill{{Name: "UI/UX"}}}
	uc := NewSkillUsecase(repo)

	items, err := uc.SearchSkills(context.Background(), "  Ui/UX   Design ", 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "ui/ux design", repo.query)
	assert.Equal(t, 20, repo.limit)
}

func TestSkill_SearchErrors(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})
	_, err := uc.SearchSkills(context.Background(), "", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewSkillUsecase(&mockSkillRepo{searchErr: errors.New("boom")})
	_, err = uc.SearchSkills(context.Background(), "go", 10)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSkill_Add(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo)

	created, err := uc.AddSkill(context.Background(), AddSkillInput{Name: "  Public   Speaking ", Category: " Communication ", Location: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Public Speaking", created.Name)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Communication", *created.Category)
	assert.Nil(t, created.Location)
	assert.Nil(t, created.Difficulty)
}

func TestSkill_AddErrors(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})
	_, err := uc.AddSkill(context.Background(), AddSkillInput{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewSkillUsecase(&mockSkillRepo{createErr: repository.ErrSkillNameTaken})
	_, err = uc.AddSkill(context.Background(), AddSkillInput{Name: "Go"})
	assert.ErrorIs(t, err, ErrSkillAlreadyExists)
}
