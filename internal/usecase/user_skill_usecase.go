package usecase

import (
	"context"
	"errors"
	"fmt"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type UserSkillUsecase interface {
	AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, rel skill.Relation) error
	RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID, rel skill.Relation) error
}

// Invalidator is notified after a profile change so cached rankings are dropped.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type UserSkill struct {
	repo        repository.UserSkillRepository
	users       repository.UserQueryRepository
	invalidator Invalidator
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, users repository.UserQueryRepository, invalidator Invalidator) *UserSkill {
	return &UserSkill{repo: repo, users: users, invalidator: invalidator}
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, rel skill.Relation) error {
	if err := u.validate(ctx, userID, skillID, rel); err != nil {
		return err
	}

	err := u.repo.Add(ctx, skill.UserSkill{UserID: userID, SkillID: skillID, Relation: rel})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillExists):
			return ErrSkillAlreadyExists
		case errors.Is(err, repository.ErrUserOrSkillAbsent):
			return ErrSkillNotFound
		default:
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	u.invalidate(ctx)
	return nil
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID, rel skill.Relation) error {
	if err := u.validate(ctx, userID, skillID, rel); err != nil {
		return err
	}

	err := u.repo.Remove(ctx, skill.UserSkill{UserID: userID, SkillID: skillID, Relation: rel})
	if err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	u.invalidate(ctx)
	return nil
}

func (u *UserSkill) validate(ctx context.Context, userID, skillID uuid.UUID, rel skill.Relation) error {
	if userID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if !rel.Valid() {
		return ErrInvalidRelation
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (u *UserSkill) invalidate(ctx context.Context) {
	if u.invalidator != nil {
		u.invalidator.Invalidate(ctx)
	}
}
