package battle

import (
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

// EventType classifies a battle Event.
type EventType int

const (
	EventStart EventType = iota
	EventSurprise
	EventPlayerAttack
	EventPlayerHerb
	EventPlayerSpell
	EventPlayerFlee
	EventPlayerAsleep
	EventPlayerWoke
	EventEnemyAsleep
	EventEnemyWoke
	EventEnemyFlee
	EventEnemyAction
	EventConclusion
)

var eventTypeNames = map[EventType]string{
	EventStart:        "start",
	EventSurprise:     "surprise",
	EventPlayerAttack: "player_attack",
	EventPlayerHerb:   "player_herb",
	EventPlayerSpell:  "player_spell",
	EventPlayerFlee:   "player_flee",
	EventPlayerAsleep: "player_asleep",
	EventPlayerWoke:   "player_woke",
	EventEnemyAsleep:  "enemy_asleep",
	EventEnemyWoke:    "enemy_woke",
	EventEnemyFlee:    "enemy_flee",
	EventEnemyAction:  "enemy_action",
	EventConclusion:   "conclusion",
}

// String returns the snake_case name of the event type.
func (t EventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("event_type(%d)", int(t))
}

// Actor identifies which combatant an Event is about.
type Actor string

const (
	ActorPlayer Actor = "player"
	ActorEnemy  Actor = "enemy"
)

// Event is one structured, renderable step of a battle. At most one of the
// result pointers is set, matching Type.
type Event struct {
	Type      EventType
	Actor     Actor
	Narrative string

	Attack *combat.AttackResult
	Spell  *combat.SpellResult
	Herb   *combat.HerbResult
	Enemy  *combat.EnemyActionResult
	// Fled is set on EventPlayerFlee and reports whether the escape worked.
	Fled bool
	// Conclusion is set on EventConclusion.
	Conclusion Conclusion
}

// Report is everything that happened in response to one call, in order,
// together with the state the battle was left in.
type Report struct {
	Events     []Event
	State      State
	Conclusion Conclusion
}

func (r *Report) add(e Event) {
	r.Events = append(r.Events, e)
}

// Last returns the most recent event of type t.
//
// Postcondition: Returns (event, true) if one exists, or (zero, false) otherwise.
func (r Report) Last(t EventType) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

func attackNarrative(res combat.AttackResult, enemyName string) string {
	opening := "You attack!"
	if res.Crit {
		opening = "You attack with an excellent attack!!"
	}
	if !res.Hit {
		return fmt.Sprintf("%s But the %s dodged your attack!", opening, enemyName)
	}
	return fmt.Sprintf("%s You hit %s for %d points of damage!", opening, enemyName, res.Damage)
}

func herbNarrative(res combat.HerbResult) string {
	switch res.Reason {
	case combat.NoHerbs:
		return "You have no herbs!"
	case combat.MaxHP:
		return "You eat an herb, but your hit points were already at maximum!"
	default:
		return fmt.Sprintf("You eat an herb and recover %d hit points!", res.Healing)
	}
}

func spellNarrative(res combat.SpellResult, enemyName string) string {
	name := res.Spell.String()
	switch res.Reason {
	case combat.NotEnoughMP:
		return fmt.Sprintf("You try to cast %s, but don't have enough MP!", name)
	case combat.PlayerSpellstopped:
		return fmt.Sprintf("You cast %s, but your magic has been sealed!", name)
	case combat.HealedAtMaxHP:
		return fmt.Sprintf("You cast %s, but your hit points were already at maximum!", name)
	case combat.EnemyResistedHurt:
		return fmt.Sprintf("You cast %s, but the %s resisted!", name, enemyName)
	case combat.EnemyAlreadyAsleep:
		return fmt.Sprintf("You cast Sleep! But the %s is already asleep!", enemyName)
	case combat.EnemyResistedSleep:
		return fmt.Sprintf("You cast Sleep! But the %s resisted!", enemyName)
	case combat.EnemyAlreadySpellstopped:
		return fmt.Sprintf("You cast Stopspell! But the %s's magic was already blocked!", enemyName)
	case combat.EnemyResistedSpellstop:
		return fmt.Sprintf("You cast Stopspell! But the %s resisted!", enemyName)
	}
	switch res.Spell {
	case combat.SpellHeal, combat.SpellHealmore:
		return fmt.Sprintf("You cast %s! You are healed %d hit points!", name, res.Amount)
	case combat.SpellHurt, combat.SpellHurtmore:
		return fmt.Sprintf("You cast %s! The %s is hurt by %d hit points!", name, enemyName, res.Amount)
	case combat.SpellSleep:
		return fmt.Sprintf("You cast Sleep! The %s is now asleep!", enemyName)
	default:
		return fmt.Sprintf("You cast Stopspell! The %s's magic is now blocked!!", enemyName)
	}
}

func enemyActionVerb(a combat.EnemyAction) string {
	switch a {
	case combat.ActionFire:
		return "breathes fire"
	case combat.ActionStrongfire:
		return "breathes strong flames at you"
	default:
		return "casts " + spellTitle(a)
	}
}

func spellTitle(a combat.EnemyAction) string {
	switch a {
	case combat.ActionHurt:
		return "Hurt"
	case combat.ActionHurtmore:
		return "Hurtmore"
	case combat.ActionHeal:
		return "Heal"
	case combat.ActionHealmore:
		return "Healmore"
	case combat.ActionSleep:
		return "Sleep"
	case combat.ActionStopspell:
		return "Stopspell"
	default:
		return a.String()
	}
}

func enemyNarrative(res combat.EnemyActionResult, enemyName string) string {
	if res.Reason == combat.EnemySpellstopped {
		return fmt.Sprintf("The %s %s, but its spell has been blocked!", enemyName, enemyActionVerb(res.Action))
	}
	switch res.Action {
	case combat.ActionAttack:
		return fmt.Sprintf("The %s attacks! You are hit for %d damage.", enemyName, res.Amount)
	case combat.ActionHurt, combat.ActionHurtmore, combat.ActionFire, combat.ActionStrongfire:
		return fmt.Sprintf("The %s %s! You are hurt for %d damage!", enemyName, enemyActionVerb(res.Action), res.Amount)
	case combat.ActionHeal, combat.ActionHealmore:
		return fmt.Sprintf("The %s casts %s! The %s is healed %d hit points!", enemyName, spellTitle(res.Action), enemyName, res.Amount)
	case combat.ActionSleep:
		return fmt.Sprintf("The %s casts Sleep. You fall asleep!!", enemyName)
	case combat.ActionStopspell:
		if !res.Success {
			return fmt.Sprintf("The %s casts Stopspell, but the spell fails!", enemyName)
		}
		return fmt.Sprintf("The %s casts Stopspell! Your magic has been blocked!", enemyName)
	default:
		return fmt.Sprintf("The %s does something unexpected.", enemyName)
	}
}

func conclusionNarrative(c Conclusion, enemyName string) string {
	switch c {
	case Win:
		return fmt.Sprintf("You have defeated the %s!", enemyName)
	case Loss:
		return fmt.Sprintf("You have been defeated by the %s!", enemyName)
	case PlayerFled:
		return "You successfully flee!"
	case EnemyFled:
		return fmt.Sprintf("The %s flees from your superior strength!", enemyName)
	default:
		return ""
	}
}
