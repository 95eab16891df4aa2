package services

import (
	"testing"

	"github.com/pup-picks/pawmatch_api/model"
)

func makeToy(t *testing.T, durability string, sizes, playStyles []string) *model.Toy {
	t.Helper()

	toy := &model.Toy{Name: "test toy", Durability: durability}
	if err := toy.SetSizes(sizes); err != nil {
		t.Fatal(err)
	}
	if err := toy.SetPlayStyles(playStyles); err != nil {
		t.Fatal(err)
	}
	return toy
}

func TestCalculateMatchScoreNilProfile(t *testing.T) {
	svc := &MatchService{}
	toy := makeToy(t, "moderate", []string{"medium"}, []string{"fetch"})

	if got := svc.CalculateMatchScore(toy, nil); got != 0 {
		t.Errorf("score without profile = %d, want 0", got)
	}
}

func TestCalculateMatchScoreAxes(t *testing.T) {
	svc := &MatchService{}

	tests := []struct {
		name    string
		toy     *model.Toy
		profile *model.DogProfile
		want    int
	}{
		{
			name:    "size only",
			toy:     makeToy(t, "", []string{"small", "medium"}, nil),
			profile: &model.DogProfile{Size: "medium"},
			want:    30,
		},
		{
			name:    "play style only",
			toy:     makeToy(t, "", nil, []string{"tug"}),
			profile: &model.DogProfile{PlayStyle: "tug"},
			want:    40,
		},
		{
			name:    "durability exceeds chew strength",
			toy:     makeToy(t, "destroyer", nil, nil),
			profile: &model.DogProfile{ChewStrength: "moderate"},
			want:    20,
		},
		{
			name:    "durability exact match gets bonus",
			toy:     makeToy(t, "moderate", nil, nil),
			profile: &model.DogProfile{ChewStrength: "moderate"},
			want:    30,
		},
		{
			name:    "durability undershoot scores nothing",
			toy:     makeToy(t, "gentle", nil, nil),
			profile: &model.DogProfile{ChewStrength: "destroyer"},
			want:    0,
		},
		{
			name:    "all axes align",
			toy:     makeToy(t, "aggressive", []string{"large"}, []string{"fetch"}),
			profile: &model.DogProfile{Size: "large", PlayStyle: "fetch", ChewStrength: "aggressive"},
			want:    100,
		},
		{
			name:    "empty profile attributes stay neutral",
			toy:     makeToy(t, "moderate", []string{"medium"}, []string{"fetch"}),
			profile: &model.DogProfile{},
			want:    0,
		},
		{
			name:    "unknown chew strength is ignored",
			toy:     makeToy(t, "moderate", nil, nil),
			profile: &model.DogProfile{ChewStrength: "titanium"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CalculateMatchScore(tt.toy, tt.profile); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateMatchScoreDeterministic(t *testing.T) {
	svc := &MatchService{}
	toy := makeToy(t, "aggressive", []string{"large"}, []string{"fetch"})
	profile := &model.DogProfile{Size: "large", PlayStyle: "fetch", ChewStrength: "moderate"}

	first := svc.CalculateMatchScore(toy, profile)
	for i := 0; i < 10; i++ {
		if got := svc.CalculateMatchScore(toy, profile); got != first {
			t.Fatalf("score changed between calls: %d then %d", first, got)
		}
	}
}

func TestSortToysByMatch(t *testing.T) {
	svc := &MatchService{}
	profile := &model.DogProfile{Size: "medium", PlayStyle: "fetch", ChewStrength: "moderate"}

	low := makeToy(t, "gentle", nil, nil)
	mid := makeToy(t, "moderate", []string{"medium"}, nil)
	high := makeToy(t, "moderate", []string{"medium"}, []string{"fetch"})
	low.Name, mid.Name, high.Name = "low", "mid", "high"

	toys := []model.Toy{*low, *mid, *high}
	sorted := svc.SortToysByMatch(toys, profile)

	for i := 1; i < len(sorted); i++ {
		prev := svc.CalculateMatchScore(&sorted[i-1], profile)
		cur := svc.CalculateMatchScore(&sorted[i], profile)
		if prev < cur {
			t.Errorf("sorted[%d] score %d < sorted[%d] score %d", i-1, prev, i, cur)
		}
	}

	if len(sorted) != len(toys) {
		t.Fatalf("sort changed length: got %d, want %d", len(sorted), len(toys))
	}

	if sorted[0].Name != "high" {
		t.Errorf("best match = %q, want high", sorted[0].Name)
	}

	// Input slice must not be reordered.
	if toys[0].Name != "low" || toys[1].Name != "mid" || toys[2].Name != "high" {
		t.Error("input slice was mutated")
	}
}

func TestSortToysByMatchNoProfile(t *testing.T) {
	svc := &MatchService{}

	a := makeToy(t, "gentle", nil, nil)
	b := makeToy(t, "destroyer", []string{"large"}, []string{"tug"})
	a.Name = "a"
	b.Name = "b"

	sorted := svc.SortToysByMatch([]model.Toy{*a, *b}, nil)
	if sorted[0].Name != "a" || sorted[1].Name != "b" {
		t.Error("order changed without a profile")
	}
}

func TestSortToysByMatchStableForTies(t *testing.T) {
	svc := &MatchService{}
	profile := &model.DogProfile{Size: "medium"}

	first := makeToy(t, "", []string{"medium"}, nil)
	second := makeToy(t, "", []string{"medium"}, nil)
	first.Name = "first"
	second.Name = "second"

	sorted := svc.SortToysByMatch([]model.Toy{*first, *second}, profile)
	if sorted[0].Name != "first" || sorted[1].Name != "second" {
		t.Error("equal scores were reordered")
	}
}

func TestMatchBadgeThresholds(t *testing.T) {
	svc := &MatchService{}

	tests := []struct {
		name     string
		toy      *model.Toy
		profile  *model.DogProfile
		wantType string
	}{
		{
			name:     "perfect at 70",
			toy:      makeToy(t, "", []string{"medium"}, []string{"fetch"}),
			profile:  &model.DogProfile{Size: "medium", PlayStyle: "fetch"},
			wantType: "perfect",
		},
		{
			name:     "great at 60",
			toy:      makeToy(t, "destroyer", nil, []string{"fetch"}),
			profile:  &model.DogProfile{Name: "Rex", PlayStyle: "fetch", ChewStrength: "aggressive"},
			wantType: "great",
		},
		{
			name:     "good at 30",
			toy:      makeToy(t, "", []string{"medium"}, nil),
			profile:  &model.DogProfile{Size: "medium"},
			wantType: "good",
		},
		{
			name:     "warning when toy is too weak",
			toy:      makeToy(t, "gentle", nil, nil),
			profile:  &model.DogProfile{ChewStrength: "destroyer"},
			wantType: "warning",
		},
		{
			name:     "warning when toy durability missing",
			toy:      makeToy(t, "", nil, nil),
			profile:  &model.DogProfile{ChewStrength: "gentle"},
			wantType: "warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := svc.MatchBadge(tt.toy, tt.profile)
			if badge == nil {
				t.Fatal("expected a badge, got nil")
			}
			if badge.Type != tt.wantType {
				t.Errorf("badge type = %q, want %q", badge.Type, tt.wantType)
			}
		})
	}
}

func TestMatchBadgeGreatUsesDogName(t *testing.T) {
	svc := &MatchService{}
	toy := makeToy(t, "destroyer", nil, []string{"fetch"})

	named := svc.MatchBadge(toy, &model.DogProfile{Name: "Rex", PlayStyle: "fetch", ChewStrength: "aggressive"})
	if named == nil || named.Label != "Great for Rex" {
		t.Errorf("badge = %+v, want Great for Rex", named)
	}

	unnamed := svc.MatchBadge(toy, &model.DogProfile{PlayStyle: "fetch", ChewStrength: "aggressive"})
	if unnamed == nil || unnamed.Label != "Great for your pup" {
		t.Errorf("badge = %+v, want Great for your pup", unnamed)
	}
}

func TestMatchBadgeNil(t *testing.T) {
	svc := &MatchService{}
	toy := makeToy(t, "destroyer", nil, nil)

	if badge := svc.MatchBadge(toy, nil); badge != nil {
		t.Errorf("badge without profile = %+v, want nil", badge)
	}

	// Low score but durable enough, no warning either.
	if badge := svc.MatchBadge(toy, &model.DogProfile{ChewStrength: ""}); badge != nil {
		t.Errorf("badge = %+v, want nil", badge)
	}
}
