package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ChallengeCatalog is the fixed pool daily sets are sampled from. Progress
// and Completed stay zero here; they only live on the per-user copies.
var ChallengeCatalog = []model.Challenge{
	{ID: "swipe_5", Title: "Swipe Scout", Description: "Swipe through 5 toys", Icon: "👆", Target: 5, Reward: 1, TrackEvent: shared.EventSwipe},
	{ID: "like_3", Title: "Like Lover", Description: "Like 3 toys", Icon: "❤️", Target: 3, Reward: 1, TrackEvent: shared.EventLike},
	{ID: "cart_2", Title: "Cart Builder", Description: "Add 2 toys to cart", Icon: "🛒", Target: 2, Reward: 2, TrackEvent: shared.EventAddToCart},
	{ID: "view_details_3", Title: "Detail Detective", Description: "View details on 3 toys", Icon: "🔍", Target: 3, Reward: 1, TrackEvent: shared.EventViewDetails},
	{ID: "swipe_10", Title: "Swipe Master", Description: "Swipe through 10 toys", Icon: "🎯", Target: 10, Reward: 2, TrackEvent: shared.EventSwipe},
	{ID: "like_5", Title: "Toy Enthusiast", Description: "Like 5 toys", Icon: "💖", Target: 5, Reward: 2, TrackEvent: shared.EventLike},
}

// PrizeTiers is the wheel's weighted distribution table, walked in declared
// order with cumulative sampling. Chances must sum to 100; Start enforces it.
var PrizeTiers = []model.PrizeTier{
	{Type: shared.PrizeTypePoints, Value: 5, Label: "+5 Points", Chance: 30, Rarity: shared.RarityCommon},
	{Type: shared.PrizeTypePoints, Value: 15, Label: "+15 Points", Chance: 25, Rarity: shared.RarityCommon},
	{Type: shared.PrizeTypePoints, Value: 25, Label: "+25 Points", Chance: 20, Rarity: shared.RarityUncommon},
	{Type: shared.PrizeTypeDiscount, Value: 1, Label: "$1 Off", Chance: 12, Rarity: shared.RarityRare},
	{Type: shared.PrizeTypeDiscount, Value: 2, Label: "$2 Off", Chance: 8, Rarity: shared.RarityRare},
	{Type: shared.PrizeTypeShipping, Value: 0, Label: "Free Shipping", Chance: 4, Rarity: shared.RarityEpic},
	{Type: shared.PrizeTypeDiscount, Value: 50, Label: "50% Off Item", Chance: 1, Rarity: shared.RarityLegendary},
}

const dailyChallengeCount = 3

// ChallengeService tracks daily challenge progress, awards spin credits and
// resolves prize wheel spins. State flows value-in/value-out through the
// pure helpers below; the service only loads, applies and saves. The clock
// and random source are injectable for deterministic tests.
type ChallengeService struct {
	context.DefaultService

	sqlSvc     *SqliteService
	monitorSvc *MonitoringService

	challengeRepo *repositories.ChallengeRepository

	now       func() time.Time
	randFloat func() float64
}

const CHALLENGE_SVC = "challenge_svc"

func (svc ChallengeService) Id() string {
	return CHALLENGE_SVC
}

func (svc *ChallengeService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	svc.randFloat = rand.Float64
	return svc.DefaultService.Configure(ctx)
}

func (svc *ChallengeService) Start() error {
	if err := ValidatePrizeTiers(PrizeTiers); err != nil {
		return err
	}

	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.monitorSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.challengeRepo = repositories.NewChallengeRepository(svc.sqlSvc.Db())
	return nil
}

// ValidatePrizeTiers checks the catalog invariant the cumulative walk
// relies on: a non-empty table whose chances sum to exactly 100.
func ValidatePrizeTiers(tiers []model.PrizeTier) error {
	if len(tiers) == 0 {
		return errors.New("prize table is empty")
	}

	var sum float64
	for _, tier := range tiers {
		if tier.Chance <= 0 {
			return fmt.Errorf("prize tier %q has non-positive chance", tier.Label)
		}
		sum += tier.Chance
	}

	if sum != 100 {
		return fmt.Errorf("prize tier chances sum to %v, want 100", sum)
	}
	return nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// newDailySet samples dailyChallengeCount definitions without replacement
// via a partial Fisher-Yates shuffle driven by rnd.
func newDailySet(rnd func() float64) []model.Challenge {
	pool := make([]model.Challenge, len(ChallengeCatalog))
	copy(pool, ChallengeCatalog)

	set := make([]model.Challenge, 0, dailyChallengeCount)
	for i := 0; i < dailyChallengeCount && i < len(pool); i++ {
		j := i + int(rnd()*float64(len(pool)-i))
		if j >= len(pool) {
			j = len(pool) - 1
		}
		pool[i], pool[j] = pool[j], pool[i]

		challenge := pool[i]
		challenge.Progress = 0
		challenge.Completed = false
		set = append(set, challenge)
	}

	return set
}

// refreshState applies the day-rollover rule: a state refreshed today
// passes through untouched; otherwise the daily set is regenerated while
// spins, points and rewards are preserved.
func refreshState(data model.ChallengeStateData, today string, rnd func() float64) model.ChallengeStateData {
	if data.LastRefresh == today {
		return data
	}

	data.DailyChallenges = newDailySet(rnd)
	data.LastRefresh = today
	return data
}

// applyEvent advances every incomplete challenge tracking kind by one.
// Completion is terminal: it credits the challenge's reward spins exactly
// once and further events for that challenge are no-ops.
func applyEvent(data model.ChallengeStateData, kind string) model.ChallengeStateData {
	updated := make([]model.Challenge, len(data.DailyChallenges))
	copy(updated, data.DailyChallenges)

	earnedSpins := 0
	for i := range updated {
		if updated[i].TrackEvent != kind || updated[i].Completed {
			continue
		}

		updated[i].Progress++
		if updated[i].Progress >= updated[i].Target {
			updated[i].Progress = updated[i].Target
			updated[i].Completed = true
			earnedSpins += updated[i].Reward
		}
	}

	data.DailyChallenges = updated
	data.AvailableSpins += earnedSpins
	return data
}

// spinState resolves one wheel draw against r in [0, 100): the first tier
// whose cumulative chance reaches r wins, with the first tier as the
// defined fallback should floating point exhaust the walk. Returns a nil
// prize and the input state unchanged when no spins are available.
func spinState(data model.ChallengeStateData, r float64, rewardID string, wonAt time.Time) (*model.PrizeTier, model.ChallengeStateData) {
	if data.AvailableSpins <= 0 {
		return nil, data
	}

	prize := PrizeTiers[0]
	cumulative := 0.0
	for _, tier := range PrizeTiers {
		cumulative += tier.Chance
		if r <= cumulative {
			prize = tier
			break
		}
	}

	data.AvailableSpins--

	if prize.Type == shared.PrizeTypePoints {
		data.TotalPoints += int(prize.Value)
	} else {
		rewards := make([]model.Reward, len(data.Rewards), len(data.Rewards)+1)
		copy(rewards, data.Rewards)
		data.Rewards = append(rewards, model.Reward{
			ID:     rewardID,
			Type:   prize.Type,
			Value:  prize.Value,
			Label:  prize.Label,
			Rarity: prize.Rarity,
			Used:   false,
			WonAt:  wonAt,
		})
	}

	return &prize, data
}

// useReward marks the matching reward as used. The record is retained and
// an unknown id is a no-op.
func useReward(data model.ChallengeStateData, rewardID string) model.ChallengeStateData {
	rewards := make([]model.Reward, len(data.Rewards))
	copy(rewards, data.Rewards)

	for i := range rewards {
		if rewards[i].ID == rewardID {
			rewards[i].Used = true
		}
	}

	data.Rewards = rewards
	return data
}

func incompleteCount(data model.ChallengeStateData) int {
	count := 0
	for _, c := range data.DailyChallenges {
		if !c.Completed {
			count++
		}
	}
	return count
}

func defaultStateData(today string, rnd func() float64) model.ChallengeStateData {
	return model.ChallengeStateData{
		DailyChallenges: newDailySet(rnd),
		AvailableSpins:  0,
		TotalPoints:     0,
		Rewards:         []model.Reward{},
		LastRefresh:     today,
	}
}

// loadCurrent fetches the user's state row and brings it to today: a
// missing row yields a fresh default, a malformed blob falls back to a
// regenerated daily set (spins and points live in typed columns and are
// kept), and a stale state is rolled over.
func (svc *ChallengeService) loadCurrent(userID string) (*model.ChallengeState, model.ChallengeStateData, error) {
	today := dayKey(svc.now())

	state, err := svc.challengeRepo.GetState(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ChallengeStateData{}, svc.sqlSvc.HandleError(err)
		}
		state = &model.ChallengeState{UserID: userID}
		return state, defaultStateData(today, svc.randFloat), nil
	}

	data, err := state.Data()
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Malformed challenge state, regenerating")
		data = defaultStateData(today, svc.randFloat)
		data.AvailableSpins = state.AvailableSpins
		data.TotalPoints = state.TotalPoints
		return state, data, nil
	}

	return state, refreshState(data, today, svc.randFloat), nil
}

func (svc *ChallengeService) saveState(state *model.ChallengeState, data model.ChallengeStateData) error {
	if err := state.SetData(data); err != nil {
		return err
	}
	if _, err := svc.challengeRepo.SaveState(state); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func (svc *ChallengeService) snapshot(data model.ChallengeStateData) *dto.ChallengeSnapshot {
	return &dto.ChallengeSnapshot{
		DailyChallenges: data.DailyChallenges,
		AvailableSpins:  data.AvailableSpins,
		TotalPoints:     data.TotalPoints,
		Rewards:         data.Rewards,
		IncompleteCount: incompleteCount(data),
		LastRefresh:     data.LastRefresh,
	}
}

// GetSnapshot returns the user's current state, rolling the day over first
// when needed.
func (svc *ChallengeService) GetSnapshot(userID string) (*dto.ChallengeSnapshot, error) {
	state, data, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	if err := svc.saveState(state, data); err != nil {
		return nil, err
	}

	return svc.snapshot(data), nil
}

func (svc *ChallengeService) track(userID string, kinds ...string) (*dto.ChallengeSnapshot, error) {
	state, data, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	before := data.AvailableSpins
	for _, kind := range kinds {
		data = applyEvent(data, kind)
	}

	if err := svc.saveState(state, data); err != nil {
		return nil, err
	}

	if earned := data.AvailableSpins - before; earned > 0 {
		svc.monitorSvc.RecordChallengeCompleted()
		log.WithFields(log.Fields{
			"user_id": userID,
			"spins":   earned,
		}).Info("Challenge completed, spins awarded")
	}

	return svc.snapshot(data), nil
}

// TrackSwipe records a swipe; a right swipe also counts as a like.
func (svc *ChallengeService) TrackSwipe(userID string, liked bool) (*dto.ChallengeSnapshot, error) {
	svc.monitorSvc.RecordSwipe(liked)
	if liked {
		return svc.track(userID, shared.EventSwipe, shared.EventLike)
	}
	return svc.track(userID, shared.EventSwipe)
}

// TrackAddToCart counts both an addToCart and a like event: adding to cart
// always implies liking the toy. The double count is intentional.
func (svc *ChallengeService) TrackAddToCart(userID string) (*dto.ChallengeSnapshot, error) {
	return svc.track(userID, shared.EventAddToCart, shared.EventLike)
}

func (svc *ChallengeService) TrackViewDetails(userID string) (*dto.ChallengeSnapshot, error) {
	return svc.track(userID, shared.EventViewDetails)
}

// Spin consumes one spin credit and resolves a prize. With no credits the
// prize is nil and the state is untouched; the caller treats that as
// "spin unavailable", not an error.
func (svc *ChallengeService) Spin(userID string) (*dto.SpinResponse, error) {
	state, data, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	prize, updated := spinState(data, svc.randFloat()*100, uuid.New().String(), svc.now())
	if prize == nil {
		return &dto.SpinResponse{
			Prize:          nil,
			AvailableSpins: data.AvailableSpins,
			TotalPoints:    data.TotalPoints,
		}, nil
	}

	if err := svc.saveState(state, updated); err != nil {
		return nil, err
	}

	svc.monitorSvc.RecordSpin(prize.Rarity)
	log.WithFields(log.Fields{
		"user_id": userID,
		"prize":   prize.Label,
		"rarity":  prize.Rarity,
	}).Info("Prize wheel spin resolved")

	return &dto.SpinResponse{
		Prize:          prize,
		AvailableSpins: updated.AvailableSpins,
		TotalPoints:    updated.TotalPoints,
	}, nil
}

// UseReward marks a won reward as used. Unknown ids are a no-op.
func (svc *ChallengeService) UseReward(userID, rewardID string) (*dto.ChallengeSnapshot, error) {
	state, data, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	data = useReward(data, rewardID)

	if err := svc.saveState(state, data); err != nil {
		return nil, err
	}

	return svc.snapshot(data), nil
}
