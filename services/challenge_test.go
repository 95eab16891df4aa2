package services

import (
	"testing"
	"time"

	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/shared"
)

func fixedRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestValidatePrizeTiers(t *testing.T) {
	if err := ValidatePrizeTiers(PrizeTiers); err != nil {
		t.Fatalf("shipped prize table invalid: %v", err)
	}

	if err := ValidatePrizeTiers(nil); err == nil {
		t.Error("empty table passed validation")
	}

	bad := []model.PrizeTier{{Label: "a", Chance: 50}, {Label: "b", Chance: 49}}
	if err := ValidatePrizeTiers(bad); err == nil {
		t.Error("table summing to 99 passed validation")
	}

	negative := []model.PrizeTier{{Label: "a", Chance: -10}, {Label: "b", Chance: 110}}
	if err := ValidatePrizeTiers(negative); err == nil {
		t.Error("negative chance passed validation")
	}
}

func TestNewDailySet(t *testing.T) {
	set := newDailySet(fixedRand(0.1, 0.5, 0.9))

	if len(set) != dailyChallengeCount {
		t.Fatalf("daily set size = %d, want %d", len(set), dailyChallengeCount)
	}

	seen := make(map[string]bool)
	for _, c := range set {
		if seen[c.ID] {
			t.Errorf("challenge %q picked twice", c.ID)
		}
		seen[c.ID] = true

		if c.Progress != 0 || c.Completed {
			t.Errorf("challenge %q not reset: progress=%d completed=%v", c.ID, c.Progress, c.Completed)
		}
	}
}

func TestNewDailySetCoversCatalog(t *testing.T) {
	// Different random streams must be able to produce different sets.
	a := newDailySet(fixedRand(0))
	b := newDailySet(fixedRand(0.99))

	same := true
	for i := range a {
		if a[i].ID != b[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct random streams produced identical sets")
	}
}

func TestRefreshStateSameDay(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{{ID: "swipe_5", TrackEvent: shared.EventSwipe, Target: 5, Progress: 3}},
		AvailableSpins:  2,
		TotalPoints:     40,
		LastRefresh:     "2026-08-30",
	}

	got := refreshState(data, "2026-08-30", fixedRand(0.5))

	if got.DailyChallenges[0].Progress != 3 {
		t.Error("same-day refresh reset progress")
	}
	if got.AvailableSpins != 2 || got.TotalPoints != 40 {
		t.Error("same-day refresh touched spins or points")
	}
}

func TestRefreshStateRollover(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{{ID: "swipe_5", TrackEvent: shared.EventSwipe, Target: 5, Progress: 5, Completed: true}},
		AvailableSpins:  3,
		TotalPoints:     120,
		Rewards:         []model.Reward{{ID: "r1", Label: "$1 Off"}},
		LastRefresh:     "2026-08-29",
	}

	got := refreshState(data, "2026-08-30", fixedRand(0.2, 0.4, 0.8))

	if got.LastRefresh != "2026-08-30" {
		t.Errorf("last refresh = %q, want 2026-08-30", got.LastRefresh)
	}
	if len(got.DailyChallenges) != dailyChallengeCount {
		t.Fatalf("rollover set size = %d, want %d", len(got.DailyChallenges), dailyChallengeCount)
	}
	for _, c := range got.DailyChallenges {
		if c.Progress != 0 || c.Completed {
			t.Errorf("rollover kept progress on %q", c.ID)
		}
	}

	// Spins, points and reward history survive the rollover.
	if got.AvailableSpins != 3 || got.TotalPoints != 120 || len(got.Rewards) != 1 {
		t.Errorf("rollover lost carried state: spins=%d points=%d rewards=%d",
			got.AvailableSpins, got.TotalPoints, len(got.Rewards))
	}
}

func TestApplyEventProgress(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{
			{ID: "swipe_5", TrackEvent: shared.EventSwipe, Target: 5, Reward: 1},
			{ID: "like_3", TrackEvent: shared.EventLike, Target: 3, Reward: 1},
		},
	}

	got := applyEvent(data, shared.EventSwipe)

	if got.DailyChallenges[0].Progress != 1 {
		t.Errorf("swipe challenge progress = %d, want 1", got.DailyChallenges[0].Progress)
	}
	if got.DailyChallenges[1].Progress != 0 {
		t.Errorf("like challenge progressed on swipe event")
	}
	if data.DailyChallenges[0].Progress != 0 {
		t.Error("input state was mutated")
	}
}

func TestApplyEventCompletionAwardsSpinsOnce(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{
			{ID: "like_3", TrackEvent: shared.EventLike, Target: 3, Reward: 2},
		},
	}

	for i := 0; i < 3; i++ {
		data = applyEvent(data, shared.EventLike)
	}

	if !data.DailyChallenges[0].Completed {
		t.Fatal("challenge not completed at target")
	}
	if data.AvailableSpins != 2 {
		t.Errorf("spins = %d, want 2", data.AvailableSpins)
	}

	// Further events must not progress or re-award a completed challenge.
	data = applyEvent(data, shared.EventLike)
	if data.AvailableSpins != 2 {
		t.Errorf("completed challenge re-awarded spins: %d", data.AvailableSpins)
	}
	if data.DailyChallenges[0].Progress != 3 {
		t.Errorf("progress moved past target: %d", data.DailyChallenges[0].Progress)
	}
}

func TestApplyEventMatchesAllTracking(t *testing.T) {
	// Two challenges tracking the same event both advance on one event.
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{
			{ID: "swipe_5", TrackEvent: shared.EventSwipe, Target: 5, Reward: 1},
			{ID: "swipe_10", TrackEvent: shared.EventSwipe, Target: 10, Reward: 2},
		},
	}

	data = applyEvent(data, shared.EventSwipe)

	if data.DailyChallenges[0].Progress != 1 || data.DailyChallenges[1].Progress != 1 {
		t.Errorf("progress = %d/%d, want 1/1",
			data.DailyChallenges[0].Progress, data.DailyChallenges[1].Progress)
	}
}

func TestSpinStateNoSpins(t *testing.T) {
	data := model.ChallengeStateData{AvailableSpins: 0, TotalPoints: 10}

	prize, got := spinState(data, 50, "r1", time.Now())

	if prize != nil {
		t.Errorf("prize without spins = %+v, want nil", prize)
	}
	if got.TotalPoints != 10 || got.AvailableSpins != 0 {
		t.Error("state changed despite no spins")
	}
}

func TestSpinStateTierSelection(t *testing.T) {
	// Cumulative walk over 30/25/20/12/8/4/1.
	tests := []struct {
		r         float64
		wantLabel string
	}{
		{0, "+5 Points"},
		{30, "+5 Points"},
		{30.01, "+15 Points"},
		{55, "+15 Points"},
		{75, "+25 Points"},
		{87, "$1 Off"},
		{95, "$2 Off"},
		{99, "Free Shipping"},
		{99.5, "50% Off Item"},
		{100, "50% Off Item"},
	}

	for _, tt := range tests {
		data := model.ChallengeStateData{AvailableSpins: 1}
		prize, _ := spinState(data, tt.r, "r1", time.Now())
		if prize == nil {
			t.Fatalf("r=%v: no prize", tt.r)
		}
		if prize.Label != tt.wantLabel {
			t.Errorf("r=%v: prize = %q, want %q", tt.r, prize.Label, tt.wantLabel)
		}
	}
}

func TestSpinStatePointsPrize(t *testing.T) {
	data := model.ChallengeStateData{AvailableSpins: 2, TotalPoints: 100}

	prize, got := spinState(data, 10, "r1", time.Now())

	if prize == nil || prize.Type != shared.PrizeTypePoints {
		t.Fatalf("prize = %+v, want points tier", prize)
	}
	if got.AvailableSpins != 1 {
		t.Errorf("spins = %d, want 1", got.AvailableSpins)
	}
	if got.TotalPoints != 100+int(prize.Value) {
		t.Errorf("points = %d, want %d", got.TotalPoints, 100+int(prize.Value))
	}
	if len(got.Rewards) != 0 {
		t.Error("points prize created a reward record")
	}
}

func TestSpinStateRewardPrize(t *testing.T) {
	wonAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	data := model.ChallengeStateData{AvailableSpins: 1, TotalPoints: 100}

	prize, got := spinState(data, 87, "reward-id", wonAt)

	if prize == nil || prize.Type != shared.PrizeTypeDiscount {
		t.Fatalf("prize = %+v, want discount tier", prize)
	}
	if got.TotalPoints != 100 {
		t.Errorf("points changed on non-point prize: %d", got.TotalPoints)
	}
	if len(got.Rewards) != 1 {
		t.Fatalf("rewards = %d, want 1", len(got.Rewards))
	}

	reward := got.Rewards[0]
	if reward.ID != "reward-id" || reward.Used || !reward.WonAt.Equal(wonAt) {
		t.Errorf("reward record = %+v", reward)
	}
	if reward.Label != prize.Label || reward.Rarity != prize.Rarity {
		t.Errorf("reward does not mirror prize: %+v vs %+v", reward, prize)
	}
}

func TestSpinStateExhaustsCredits(t *testing.T) {
	data := model.ChallengeStateData{AvailableSpins: 2}

	var prize *model.PrizeTier
	prize, data = spinState(data, 10, "r1", time.Now())
	if prize == nil {
		t.Fatal("first spin failed")
	}
	prize, data = spinState(data, 10, "r2", time.Now())
	if prize == nil {
		t.Fatal("second spin failed")
	}

	prize, data = spinState(data, 10, "r3", time.Now())
	if prize != nil {
		t.Errorf("third spin resolved with zero credits: %+v", prize)
	}
	if data.AvailableSpins != 0 {
		t.Errorf("spins = %d, want 0", data.AvailableSpins)
	}
}

func TestUseReward(t *testing.T) {
	data := model.ChallengeStateData{
		Rewards: []model.Reward{
			{ID: "r1", Label: "$1 Off"},
			{ID: "r2", Label: "Free Shipping"},
		},
	}

	got := useReward(data, "r1")

	if !got.Rewards[0].Used {
		t.Error("target reward not marked used")
	}
	if got.Rewards[1].Used {
		t.Error("other reward marked used")
	}
	if len(got.Rewards) != 2 {
		t.Errorf("reward record dropped: %d", len(got.Rewards))
	}
	if data.Rewards[0].Used {
		t.Error("input state was mutated")
	}

	// Unknown id is a no-op.
	got = useReward(got, "missing")
	if len(got.Rewards) != 2 || got.Rewards[1].Used {
		t.Error("unknown reward id changed state")
	}
}

func TestIncompleteCount(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: []model.Challenge{
			{ID: "a", Completed: true},
			{ID: "b"},
			{ID: "c"},
		},
	}

	if got := incompleteCount(data); got != 2 {
		t.Errorf("incomplete = %d, want 2", got)
	}
}

func TestChallengeStateRoundTrip(t *testing.T) {
	data := model.ChallengeStateData{
		DailyChallenges: newDailySet(fixedRand(0.3)),
		AvailableSpins:  4,
		TotalPoints:     75,
		Rewards:         []model.Reward{{ID: "r1", Type: shared.PrizeTypeShipping, Label: "Free Shipping"}},
		LastRefresh:     "2026-08-30",
	}

	var state model.ChallengeState
	if err := state.SetData(data); err != nil {
		t.Fatal(err)
	}

	decoded, err := state.Data()
	if err != nil {
		t.Fatal(err)
	}

	if decoded.AvailableSpins != 4 || decoded.TotalPoints != 75 || decoded.LastRefresh != "2026-08-30" {
		t.Errorf("scalar columns lost: %+v", decoded)
	}
	if len(decoded.DailyChallenges) != len(data.DailyChallenges) || len(decoded.Rewards) != 1 {
		t.Errorf("blob columns lost: %+v", decoded)
	}
}

func TestChallengeCatalogValid(t *testing.T) {
	events := map[string]bool{
		shared.EventSwipe:       true,
		shared.EventLike:        true,
		shared.EventAddToCart:   true,
		shared.EventViewDetails: true,
	}

	seen := make(map[string]bool)
	for _, c := range ChallengeCatalog {
		if seen[c.ID] {
			t.Errorf("duplicate challenge id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Target <= 0 || c.Reward <= 0 {
			t.Errorf("challenge %q has non-positive target or reward", c.ID)
		}
		if !events[c.TrackEvent] {
			t.Errorf("challenge %q tracks unknown event %q", c.ID, c.TrackEvent)
		}
		if c.Progress != 0 || c.Completed {
			t.Errorf("catalog entry %q carries progress", c.ID)
		}
	}

	if len(ChallengeCatalog) < dailyChallengeCount {
		t.Fatalf("catalog smaller than daily set: %d < %d", len(ChallengeCatalog), dailyChallengeCount)
	}
}

func TestDayKey(t *testing.T) {
	got := dayKey(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC))
	if got != "2026-08-30" {
		t.Errorf("dayKey = %q, want 2026-08-30", got)
	}
}
