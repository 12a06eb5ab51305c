package game

import (
	"maze-crawler/internal/component"
	"maze-crawler/internal/system"
)

// RunLog records statistics gathered during one run. It lives only for the
// process and feeds the end-of-run summary.
type RunLog struct {
	Floors         int
	FloorsReached  int
	TurnsPlayed    int
	MonstersKilled int
	DamageDealt    int
	DamageTaken    int
	WeaponsFound   int
	Outcome        GameState
	Hero           component.Character
}

func newRunLog(floors int) RunLog {
	return RunLog{Floors: floors, FloorsReached: 1}
}

// record folds one resolved turn into the statistics.
func (r *RunLog) record(turn system.Turn, floor int) {
	if turn.Result != system.MoveIdle {
		r.TurnsPlayed++
	}
	if floor > r.FloorsReached {
		r.FloorsReached = floor
	}
	if turn.Combat == nil {
		return
	}
	for _, ex := range turn.Combat.Exchanges {
		if ex.Attacker == system.SidePlayer {
			r.DamageDealt += ex.Damage
		} else {
			r.DamageTaken += ex.Damage
		}
	}
	if turn.Combat.Won {
		r.MonstersKilled++
	}
	if turn.Combat.Drop != nil {
		r.WeaponsFound++
	}
}
