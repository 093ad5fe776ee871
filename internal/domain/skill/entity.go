package skill

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Relation string

const (
	RelationOffer Relation = "offer"
	RelationWant  Relation = "want"
)

func (r Relation) Valid() bool {
	return r == RelationOffer || r == RelationWant
}

type Skill struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Category    *string
	Difficulty  *string
	Location    *string
	CreatedAt   time.Time
}

// Key is the case-insensitive identity used for matching.
func (s Skill) Key() string {
	return strings.ToLower(s.Name)
}

type UserSkill struct {
	UserID   uuid.UUID
	SkillID  uuid.UUID
	Relation Relation
}
