package services

import (
	"testing"

	"github.com/pup-picks/pawmatch_api/model"
)

func TestApplySwipeFirstEver(t *testing.T) {
	got := applySwipe(model.UserStats{}, true, "2026-08-30", "2026-08-29")

	if got.CurrentStreak != 1 || got.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", got.CurrentStreak, got.LongestStreak)
	}
	if got.TotalSwipes != 1 || got.TotalLikes != 1 || got.TotalSkips != 0 {
		t.Errorf("totals = %d/%d/%d", got.TotalSwipes, got.TotalLikes, got.TotalSkips)
	}
	if got.Points != 1 {
		t.Errorf("points = %d, want 1", got.Points)
	}
	if got.LastSwipeDate != "2026-08-30" {
		t.Errorf("last swipe date = %q", got.LastSwipeDate)
	}
}

func TestApplySwipeSameDayKeepsStreak(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 4, LongestStreak: 6, LastSwipeDate: "2026-08-30"}

	got := applySwipe(stats, false, "2026-08-30", "2026-08-29")

	if got.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", got.CurrentStreak)
	}
	if got.TotalSkips != 1 {
		t.Errorf("skips = %d, want 1", got.TotalSkips)
	}
}

func TestApplySwipeConsecutiveDayExtendsStreak(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 4, LongestStreak: 4, LastSwipeDate: "2026-08-29"}

	got := applySwipe(stats, true, "2026-08-30", "2026-08-29")

	if got.CurrentStreak != 5 {
		t.Errorf("streak = %d, want 5", got.CurrentStreak)
	}
	if got.LongestStreak != 5 {
		t.Errorf("longest = %d, want 5", got.LongestStreak)
	}
}

func TestApplySwipeGapResetsStreak(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 9, LongestStreak: 9, LastSwipeDate: "2026-08-20"}

	got := applySwipe(stats, true, "2026-08-30", "2026-08-29")

	if got.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", got.CurrentStreak)
	}
	if got.LongestStreak != 9 {
		t.Errorf("longest = %d, want 9", got.LongestStreak)
	}
}

func TestUnlockAchievementsThresholds(t *testing.T) {
	stats := model.UserStats{TotalSwipes: 10, Points: 0}
	if err := stats.SetAchievementIDs([]string{}); err != nil {
		t.Fatal(err)
	}

	got, unlocked := unlockAchievements(stats)

	// 10 swipes satisfies first_swipe and getting_started.
	if len(unlocked) != 2 {
		t.Fatalf("unlocked %d achievements, want 2", len(unlocked))
	}
	if got.Points != 2*pointsPerAchievement {
		t.Errorf("points = %d, want %d", got.Points, 2*pointsPerAchievement)
	}

	ids := got.AchievementIDs()
	if len(ids) != 2 {
		t.Errorf("stored ids = %v", ids)
	}
}

func TestUnlockAchievementsOnce(t *testing.T) {
	stats := model.UserStats{TotalSwipes: 1}
	if err := stats.SetAchievementIDs([]string{"first_swipe"}); err != nil {
		t.Fatal(err)
	}

	got, unlocked := unlockAchievements(stats)

	if len(unlocked) != 0 {
		t.Errorf("re-unlocked %v", unlocked)
	}
	if got.Points != 0 {
		t.Errorf("points paid twice: %d", got.Points)
	}
}

func TestUnlockAchievementsStreakUsesLongest(t *testing.T) {
	// A broken streak must not re-lock streak achievements.
	stats := model.UserStats{CurrentStreak: 1, LongestStreak: 7}
	if err := stats.SetAchievementIDs([]string{}); err != nil {
		t.Fatal(err)
	}

	_, unlocked := unlockAchievements(stats)

	want := map[string]bool{"streak_starter": true, "week_warrior": true}
	for _, a := range unlocked {
		if !want[a.ID] {
			t.Errorf("unexpected unlock %q", a.ID)
		}
		delete(want, a.ID)
	}
	for id := range want {
		t.Errorf("missing unlock %q", id)
	}
}

func TestUnlockAchievementsSpending(t *testing.T) {
	stats := model.UserStats{TotalPurchases: 1, TotalSpent: 120}
	if err := stats.SetAchievementIDs([]string{}); err != nil {
		t.Fatal(err)
	}

	_, unlocked := unlockAchievements(stats)

	want := map[string]bool{"first_purchase": true, "big_spender": true}
	for _, a := range unlocked {
		if !want[a.ID] {
			t.Errorf("unexpected unlock %q", a.ID)
		}
		delete(want, a.ID)
	}
	for id := range want {
		t.Errorf("missing unlock %q", id)
	}
}

func TestAchievementCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range AchievementCatalog {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true

		if a.Threshold <= 0 {
			t.Errorf("achievement %q has non-positive threshold", a.ID)
		}
	}
}
