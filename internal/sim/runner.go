package sim

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/game/ai"
	"github.com/cory-johannsen/fightsim/internal/game/battle"
	"github.com/cory-johannsen/fightsim/internal/game/character"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/npc"
)

// MaxActions bounds the player actions in one battle.
const MaxActions = 1000

// ErrUnresolved is returned when a battle does not resolve within MaxActions.
var ErrUnresolved = errors.New("battle did not resolve")

// Tally counts battle outcomes.
type Tally struct {
	Battles    int
	Wins       int
	Losses     int
	PlayerFled int
	EnemyFled  int
	Rounds     int
}

// Record adds one concluded battle to the tally.
func (t *Tally) Record(c battle.Conclusion, rounds int) {
	t.Battles++
	t.Rounds += rounds
	switch c {
	case battle.Win:
		t.Wins++
	case battle.Loss:
		t.Losses++
	case battle.PlayerFled:
		t.PlayerFled++
	case battle.EnemyFled:
		t.EnemyFled++
	}
}

// Fields returns the tally as zap fields.
func (t Tally) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("battles", t.Battles),
		zap.Int("wins", t.Wins),
		zap.Int("losses", t.Losses),
		zap.Int("player_fled", t.PlayerFled),
		zap.Int("enemy_fled", t.EnemyFled),
		zap.Int("rounds", t.Rounds),
	}
}

// Runner plays one player through a series of battles.
// It is not safe for concurrent use.
type Runner struct {
	bestiary *npc.Bestiary
	player   *character.Player
	engine   *combat.Engine
	selector *ai.Selector
	rng      dice.Randomizer
	logger   *zap.Logger
	enemy    string
	herbs    int
}

// NewRunner wires a Runner. enemy is an enemy ID or name, or empty for a
// random enemy each battle. herbs is how many herbs the player restocks to
// before every battle.
//
// Precondition: bestiary, player, engine, selector, rng and logger must not be nil.
func NewRunner(
	bestiary *npc.Bestiary,
	player *character.Player,
	engine *combat.Engine,
	selector *ai.Selector,
	rng dice.Randomizer,
	logger *zap.Logger,
	enemy string,
	herbs int,
) *Runner {
	if bestiary == nil || player == nil || engine == nil || selector == nil || rng == nil || logger == nil {
		panic("sim.NewRunner: bestiary, player, engine, selector, rng and logger must not be nil")
	}
	return &Runner{
		bestiary: bestiary,
		player:   player,
		engine:   engine,
		selector: selector,
		rng:      rng,
		logger:   logger,
		enemy:    enemy,
		herbs:    herbs,
	}
}

// Run plays n battles, stopping early if ctx is cancelled between battles.
//
// Postcondition: the returned Tally covers every battle that concluded.
func (r *Runner) Run(ctx context.Context, n int) (Tally, error) {
	var t Tally
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		c, rounds, err := r.RunBattle()
		if err != nil {
			return t, fmt.Errorf("battle %d: %w", i+1, err)
		}
		t.Record(c, rounds)
	}
	return t, nil
}

// RunBattle spawns an enemy and fights it to a conclusion.
func (r *Runner) RunBattle() (battle.Conclusion, int, error) {
	enemy, err := r.spawn()
	if err != nil {
		return battle.ConclusionNone, 0, err
	}
	r.player.AddHerbs(max(0, r.herbs-r.player.Herbs()))

	b := battle.New(r.player, enemy, r.engine, r.selector, r.logger, nil)
	if _, err := b.Start(); err != nil {
		return battle.ConclusionNone, 0, err
	}
	for i := 0; i < MaxActions && b.State() != battle.StateResolved; i++ {
		if err := r.act(b); err != nil {
			return battle.ConclusionNone, b.Round(), err
		}
	}
	if b.State() != battle.StateResolved {
		return battle.ConclusionNone, b.Round(), fmt.Errorf("%s after %d actions: %w", enemy.Name, MaxActions, ErrUnresolved)
	}
	return b.Conclusion(), b.Round(), nil
}

func (r *Runner) spawn() (*npc.Enemy, error) {
	if r.enemy == "" {
		return r.bestiary.SpawnRandom(r.rng), nil
	}
	return r.bestiary.Spawn(r.enemy, r.rng)
}

func (r *Runner) act(b *battle.Battle) error {
	var err error
	switch d := Decide(r.player); d.Move {
	case MoveHerb:
		_, err = b.UseHerb()
	case MoveHeal:
		_, err = b.CastSpell(d.Spell)
	default:
		_, err = b.Attack()
	}
	return err
}
