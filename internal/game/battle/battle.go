// Package battle drives a one-on-one battle between the player and an enemy
// from setup to a win, a loss or a flight.
//
// The controller is a small state machine:
//
//	Setup -> FirstTurnDecision -> PlayerTurn <-> EnemyTurn -> Resolved
//
// Every player action runs to completion, including the enemy turn it
// triggers, before the call returns. Resolved is terminal.
package battle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/game/ai"
	"github.com/cory-johannsen/fightsim/internal/game/character"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/condition"
	"github.com/cory-johannsen/fightsim/internal/game/npc"
)

var (
	// ErrBattleOver is returned for any action after the battle resolved.
	ErrBattleOver = errors.New("battle is over")
	// ErrNotPlayerTurn is returned for a player action outside the player's turn.
	ErrNotPlayerTurn = errors.New("not the player's turn")
	// ErrSpellNotLearned is returned when the player casts a spell they do not know.
	ErrSpellNotLearned = errors.New("spell not learned")
	// ErrAlreadyStarted is returned by Start on a battle that has left Setup.
	ErrAlreadyStarted = errors.New("battle already started")
)

// State is a battle state machine state.
type State int

const (
	StateSetup State = iota
	StateFirstTurnDecision
	StatePlayerTurn
	StateEnemyTurn
	StateResolved
)

// String returns the snake_case name of the state.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateFirstTurnDecision:
		return "first_turn_decision"
	case StatePlayerTurn:
		return "player_turn"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Conclusion is how a resolved battle ended.
type Conclusion int

const (
	ConclusionNone Conclusion = iota
	Win
	Loss
	PlayerFled
	EnemyFled
)

// String returns the snake_case name of the conclusion.
func (c Conclusion) String() string {
	switch c {
	case ConclusionNone:
		return "none"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case PlayerFled:
		return "player_fled"
	case EnemyFled:
		return "enemy_fled"
	default:
		return fmt.Sprintf("conclusion(%d)", int(c))
	}
}

// Battle owns one player and one enemy for the duration of a fight.
// It is not safe for concurrent use.
type Battle struct {
	id         string
	player     *character.Player
	enemy      *npc.Enemy
	engine     *combat.Engine
	selector   *ai.Selector
	logger     *zap.Logger
	onConclude func(Conclusion)

	state      State
	conclusion Conclusion
	round      int
}

// New creates a battle in the Setup state.
//
// Precondition: player, enemy, engine, selector and logger must not be nil.
// onConclude may be nil; when set it is called once, after both combatants
// have been reset.
// Postcondition: State() == StateSetup; ID() is a fresh UUID.
func New(
	player *character.Player,
	enemy *npc.Enemy,
	engine *combat.Engine,
	selector *ai.Selector,
	logger *zap.Logger,
	onConclude func(Conclusion),
) *Battle {
	if player == nil || enemy == nil || engine == nil || selector == nil || logger == nil {
		panic("battle.New: player, enemy, engine, selector and logger must not be nil")
	}
	id := uuid.NewString()
	return &Battle{
		id:         id,
		player:     player,
		enemy:      enemy,
		engine:     engine,
		selector:   selector,
		logger:     logger.With(zap.String("battle_id", id)),
		onConclude: onConclude,
		state:      StateSetup,
	}
}

// ID returns the battle's unique identifier.
func (b *Battle) ID() string { return b.id }

// State returns the current state.
func (b *Battle) State() State { return b.state }

// Conclusion returns how the battle ended, or ConclusionNone while it runs.
func (b *Battle) Conclusion() Conclusion { return b.conclusion }

// Round returns the number of enemy turns taken so far.
func (b *Battle) Round() int { return b.round }

// Player returns the battle's player.
func (b *Battle) Player() *character.Player { return b.player }

// Enemy returns the battle's enemy.
func (b *Battle) Enemy() *npc.Enemy { return b.enemy }

// Start runs the surprise check and hands control to whoever acts first. If
// the enemy surprises the player its turn is played before Start returns.
//
// Precondition: State() == StateSetup.
// Postcondition: State() is StatePlayerTurn or StateResolved.
func (b *Battle) Start() (Report, error) {
	if b.state != StateSetup {
		return Report{}, ErrAlreadyStarted
	}
	var r Report
	b.logger.Info("battle started",
		zap.String("enemy", b.enemy.Name),
		zap.Int("enemy_hp", b.enemy.CurrentHP()),
		zap.Int("player_hp", b.player.CurrentHP()),
	)
	r.add(Event{Type: EventStart, Actor: ActorEnemy, Narrative: fmt.Sprintf("A %s draws near!", b.enemy.Name)})

	b.state = StateFirstTurnDecision
	if b.engine.EnemySurprises(b.player.Agility, b.enemy.Agility) {
		b.logger.Info("enemy acts first")
		r.add(Event{
			Type:      EventSurprise,
			Actor:     ActorEnemy,
			Narrative: fmt.Sprintf("The %s attacks before you are ready!", b.enemy.Name),
		})
		b.enemyTurn(&r)
	} else {
		b.logger.Info("player acts first")
	}
	b.beginPlayerTurn(&r)
	return b.finish(r), nil
}

// checkPlayerTurn reports the error for a player action in the current state.
func (b *Battle) checkPlayerTurn() error {
	switch b.state {
	case StatePlayerTurn:
		return nil
	case StateResolved:
		return ErrBattleOver
	default:
		return ErrNotPlayerTurn
	}
}

// beginPlayerTurn enters PlayerTurn and runs the player's sleep tick. While the
// player stays asleep the enemy keeps taking turns.
func (b *Battle) beginPlayerTurn(r *Report) {
	for b.state != StateResolved {
		b.state = StatePlayerTurn
		switch b.player.Status.Sleep.Tick(b.engine.PlayerWakesUp) {
		case condition.Awake:
			return
		case condition.Woke:
			r.add(Event{Type: EventPlayerWoke, Actor: ActorPlayer, Narrative: "You wake up!"})
			return
		default:
			r.add(Event{Type: EventPlayerAsleep, Actor: ActorPlayer, Narrative: "You are still asleep."})
			b.enemyTurn(r)
		}
	}
}

// passTurn hands control to the enemy after a player action and back again.
func (b *Battle) passTurn(r *Report) {
	if b.state == StateResolved {
		return
	}
	b.enemyTurn(r)
	b.beginPlayerTurn(r)
}

// conclude resolves the battle and resets both combatants for the next one.
func (b *Battle) conclude(r *Report, c Conclusion) {
	b.state = StateResolved
	b.conclusion = c
	r.add(Event{Type: EventConclusion, Narrative: conclusionNarrative(c, b.enemy.Name), Conclusion: c})
	b.logger.Info("battle concluded",
		zap.Stringer("conclusion", c),
		zap.Int("rounds", b.round),
		zap.Int("player_hp", b.player.CurrentHP()),
		zap.Int("enemy_hp", b.enemy.CurrentHP()),
	)
	b.player.Reset()
	b.enemy.Restore()
	if b.onConclude != nil {
		b.onConclude(c)
	}
}

func (b *Battle) finish(r Report) Report {
	r.State = b.state
	r.Conclusion = b.conclusion
	return r
}
