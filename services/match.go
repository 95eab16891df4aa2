package services

import (
	"sort"

	"github.com/alphabatem/common/context"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/shared"
)

// MatchService scores toys against a dog profile. All methods are pure:
// identical inputs always produce identical outputs, and a missing profile
// or attribute degrades to a neutral result instead of an error.
type MatchService struct {
	context.DefaultService
}

const MATCH_SVC = "match_svc"

const (
	sizeMatchScore       = 30
	playStyleMatchScore  = 40
	durabilityMatchScore = 20
	durabilityExactBonus = 10

	perfectThreshold = 70
	greatThreshold   = 50
	goodThreshold    = 30
)

func (svc MatchService) Id() string {
	return MATCH_SVC
}

func (svc *MatchService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MatchService) Start() error {
	return nil
}

// CalculateMatchScore returns a compatibility score in [0, 100]. The axes
// are independent and additive: size membership, play style membership,
// and durability rank (toy must withstand the dog's chew strength, with a
// bonus for an exact rank match).
func (svc *MatchService) CalculateMatchScore(toy *model.Toy, profile *model.DogProfile) int {
	if profile == nil {
		return 0
	}

	score := 0

	if profile.Size != "" && contains(toy.SizeList(), profile.Size) {
		score += sizeMatchScore
	}

	if profile.PlayStyle != "" && contains(toy.PlayStyleList(), profile.PlayStyle) {
		score += playStyleMatchScore
	}

	if profile.ChewStrength != "" && toy.Durability != "" {
		dogRank := shared.DurabilityRank(profile.ChewStrength)
		toyRank := shared.DurabilityRank(toy.Durability)

		if dogRank >= 0 && toyRank >= dogRank {
			score += durabilityMatchScore
			if toyRank == dogRank {
				score += durabilityExactBonus
			}
		}
	}

	return score
}

// SortToysByMatch orders toys by descending match score. Without a profile
// the input order is preserved. The sort is stable so repeated calls with
// unchanged inputs yield the same order.
func (svc *MatchService) SortToysByMatch(toys []model.Toy, profile *model.DogProfile) []model.Toy {
	if profile == nil {
		return toys
	}

	sorted := make([]model.Toy, len(toys))
	copy(sorted, toys)

	sort.SliceStable(sorted, func(i, j int) bool {
		return svc.CalculateMatchScore(&sorted[i], profile) > svc.CalculateMatchScore(&sorted[j], profile)
	})

	return sorted
}

// MatchBadge derives the display badge for a toy, or nil when no badge
// applies. Thresholds are evaluated highest first; below all of them a
// durability undershoot produces a warning.
func (svc *MatchService) MatchBadge(toy *model.Toy, profile *model.DogProfile) *dto.Badge {
	if profile == nil {
		return nil
	}

	score := svc.CalculateMatchScore(toy, profile)

	if score >= perfectThreshold {
		return &dto.Badge{Type: "perfect", Label: "Perfect Match!"}
	}
	if score >= greatThreshold {
		name := profile.Name
		if name == "" {
			name = "your pup"
		}
		return &dto.Badge{Type: "great", Label: "Great for " + name}
	}
	if score >= goodThreshold {
		return &dto.Badge{Type: "good", Label: "Good fit"}
	}

	if profile.ChewStrength != "" {
		dogRank := shared.DurabilityRank(profile.ChewStrength)
		toyRank := shared.DurabilityRank(toy.Durability)
		if toyRank < dogRank {
			return &dto.Badge{Type: "warning", Label: "May not last long"}
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
