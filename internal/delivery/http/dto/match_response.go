package dto

import (
	"skill-swap/internal/domain/matching"

	"github.com/google/uuid"
)

type ScoreBreakdownResponse struct {
	Complementarity int  `json:"complementarity"`
	Reciprocity     int  `json:"reciprocity"`
	Shared          int  `json:"shared"`
	SameLocation    bool `json:"same_location"`
	SameCategory    bool `json:"same_category"`
	SameDifficulty  bool `json:"same_difficulty"`
}

type MatchResponse struct {
	UserID    uuid.UUID              `json:"user_id"`
	Name      string                 `json:"name"`
	Score     int                    `json:"score"`
	Breakdown ScoreBreakdownResponse `json:"breakdown"`
	Offered   []SkillResponse        `json:"offered"`
	Wanted    []SkillResponse        `json:"wanted"`
}

func NewMatchResponses(items []matching.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MatchResponse{
			UserID: m.User.ID,
			Name:   m.User.Name,
			Score:  m.Score,
			Breakdown: ScoreBreakdownResponse{
				Complementarity: m.Breakdown.Complementarity,
				Reciprocity:     m.Breakdown.Reciprocity,
				Shared:          m.Breakdown.Shared,
				SameLocation:    m.Breakdown.Location,
				SameCategory:    m.Breakdown.Category,
				SameDifficulty:  m.Breakdown.Difficulty,
			},
			Offered: NewSkillResponses(m.User.Offered),
			Wanted:  NewSkillResponses(m.User.Wanted),
		})
	}
	return out
}
