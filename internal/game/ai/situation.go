package ai

// Situation is the battle context the selector's eligibility gates read.
type Situation struct {
	EnemyHP      int
	EnemyMaxHP   int
	PlayerAsleep bool
	PlayerSealed bool
}

// HPRatio returns the enemy's current HP as a fraction of its maximum.
// A non-positive maximum yields 1 so healing is never chosen.
func (s Situation) HPRatio() float64 {
	if s.EnemyMaxHP <= 0 {
		return 1
	}
	return float64(s.EnemyHP) / float64(s.EnemyMaxHP)
}

// EnemyView exposes the enemy attributes a Situation needs.
type EnemyView interface {
	CurrentHP() int
	MaxHP() int
}

// PlayerView exposes the player statuses a Situation needs.
type PlayerView interface {
	Asleep() bool
	Sealed() bool
}

// BuildSituation snapshots the context for one enemy turn.
//
// Precondition: enemy and player must not be nil.
func BuildSituation(enemy EnemyView, player PlayerView) Situation {
	return Situation{
		EnemyHP:      enemy.CurrentHP(),
		EnemyMaxHP:   enemy.MaxHP(),
		PlayerAsleep: player.Asleep(),
		PlayerSealed: player.Sealed(),
	}
}
