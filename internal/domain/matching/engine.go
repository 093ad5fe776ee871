package matching

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"
)

const (
	WeightComplementarity = 3
	WeightReciprocity     = 2
	WeightShared          = 1
	MetadataBoost         = 1

	DefaultLimit = 10
)

var ErrInvalidLimit = errors.New("limit must be a positive integer")

type Breakdown struct {
	Complementarity int
	Reciprocity     int
	Shared          int
	Location        bool
	Category        bool
	Difficulty      bool
}

func (b Breakdown) Total() int {
	total := b.Complementarity + b.Reciprocity + b.Shared
	if b.Location {
		total += MetadataBoost
	}
	if b.Category {
		total += MetadataBoost
	}
	if b.Difficulty {
		total += MetadataBoost
	}
	return total
}

type Match struct {
	User      user.User
	Score     int
	Breakdown Breakdown
}

type set map[string]struct{}

func (s set) add(v string) {
	if v == "" {
		return
	}
	s[v] = struct{}{}
}

func (s set) intersectLen(o set) int {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for k := range small {
		if _, ok := large[k]; ok {
			n++
		}
	}
	return n
}

func (s set) intersects(o set) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for k := range small {
		if _, ok := large[k]; ok {
			return true
		}
	}
	return false
}

// profile holds the lower-cased sets derived from one user's skills.
type profile struct {
	offers       set
	wants        set
	locations    set
	categories   set
	difficulties set
}

func newProfile(u user.User) profile {
	p := profile{
		offers:       make(set, len(u.Offered)),
		wants:        make(set, len(u.Wanted)),
		locations:    set{},
		categories:   set{},
		difficulties: set{},
	}
	for _, s := range u.Offered {
		p.offers.add(s.Key())
		p.addAttributes(s)
	}
	for _, s := range u.Wanted {
		p.wants.add(s.Key())
		p.addAttributes(s)
	}
	return p
}

func (p profile) addAttributes(s skill.Skill) {
	p.locations.add(lowerOrEmpty(s.Location))
	p.categories.add(lowerOrEmpty(s.Category))
	p.difficulties.add(lowerOrEmpty(s.Difficulty))
}

func lowerOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(*v)
}

func scoreProfiles(me, them profile) Breakdown {
	return Breakdown{
		Complementarity: WeightComplementarity * me.wants.intersectLen(them.offers),
		Reciprocity:     WeightReciprocity * me.offers.intersectLen(them.wants),
		Shared:          WeightShared * me.offers.intersectLen(them.offers),
		Location:        me.locations.intersects(them.locations),
		Category:        me.categories.intersects(them.categories),
		Difficulty:      me.difficulties.intersects(them.difficulties),
	}
}

// Score rates candidate from target's point of view.
func Score(target, candidate user.User) (int, Breakdown) {
	b := scoreProfiles(newProfile(target), newProfile(candidate))
	return b.Total(), b
}

// Rank scores every candidate against target and returns at most limit matches,
// highest score first. Candidates scoring zero and the target itself are dropped.
// Equal scores keep the order in which candidates were given.
func Rank(ctx context.Context, target user.User, candidates []user.User, limit int) ([]Match, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	me := newProfile(target)
	out := make([]Match, 0)
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.ID == target.ID {
			continue
		}

		b := scoreProfiles(me, newProfile(c))
		score := b.Total()
		if score <= 0 {
			continue
		}
		out = append(out, Match{User: c, Score: score, Breakdown: b})
	}

	slices.SortStableFunc(out, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
