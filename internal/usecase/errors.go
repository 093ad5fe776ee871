package usecase

import (
	"errors"

	"skill-swap/internal/domain/matching"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidLimit       = matching.ErrInvalidLimit
	ErrUserNotFound       = errors.New("user not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already exists")
	ErrInvalidRelation    = errors.New("relation must be offer or want")
)
