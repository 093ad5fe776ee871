package user

import (
	"time"

	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Offered   []skill.Skill
	Wanted    []skill.Skill
	CreatedAt time.Time
}
