package dto

import "github.com/google/uuid"

type UserSkillRequest struct {
	SkillID  uuid.UUID `json:"skill_id"`
	Relation string    `json:"relation"`
}

type CreateSkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Location    string `json:"location"`
}
