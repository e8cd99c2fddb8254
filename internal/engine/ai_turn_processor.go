package engine

import (
	"tombs-server/internal/systems"
)

// runMonsterPhase даёт ровно один ход каждому живому монстру уровня.
// Порядок строго детерминирован - по спавн-индексу (см. TurnManager).
// Монстр, убитый раньше своей очереди (например, огненным шаром в этом
// же круге), хода не получает. Фаза обрывается, если герой погиб:
// оставшиеся монстры свой ход теряют.
func (i *Instance) runMonsterPhase() {
	for _, npc := range i.TurnManager.OrderedEntities() {
		if !npc.Alive() {
			i.TurnManager.RemoveEntity(npc.ID)
			continue
		}

		for _, msg := range systems.ExecuteNPCTurn(npc, i.Player, i.Grid, i.Rng) {
			i.AddLog(msg, "COMBAT")
		}

		if !i.Player.Alive() {
			return
		}
	}
}
