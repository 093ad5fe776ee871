package v1

import (
	"skill-swap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match     *handler.MatchHandler
	Skill     *handler.SkillHandler
	UserSkill *handler.UserSkillHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(r)
	}
	if h.UserSkill != nil {
		h.UserSkill.RegisterRoutes(r)
	}
}
