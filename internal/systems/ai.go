package systems

import (
	"fmt"
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NPCDecision - результат работы ИИ за один ход монстра.
type NPCDecision struct {
	Action domain.ActionType
	Target *domain.Entity
	Dx, Dy int
}

// ComputeNPCAction решает, что делать монстру на его ходу.
// Конечный автомат: Idle -> Chasing (увидел героя) -> Attacking (встал
// вплотную); потеря видимости возвращает в Idle через преследование
// последней известной позиции.
func ComputeNPCAction(npc *domain.Entity, player *domain.Entity, g *domain.Grid, rng *rand.Rand) NPCDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	if npc.AI == nil || !npc.Alive() {
		return NPCDecision{Action: domain.ActionWait}
	}

	// Оглушённый монстр спотыкается в случайном направлении. Если шаг
	// приводит на тайл героя - это атака, как и при обычном движении.
	if npc.HasStatus(domain.StatusConfused) {
		dx, dy := rng.Intn(3)-1, rng.Intn(3)-1
		aiLogger.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Debug("Confused NPC stumbles.")
		if dx == 0 && dy == 0 {
			return NPCDecision{Action: domain.ActionWait}
		}
		res := CalculateMove(npc, dx, dy, g)
		if res.BlockedBy != nil && res.BlockedBy.IsPlayer() {
			return NPCDecision{Action: domain.ActionAttack, Target: res.BlockedBy, Dx: dx, Dy: dy}
		}
		if res.HasMoved {
			return NPCDecision{Action: domain.ActionMove, Dx: dx, Dy: dy}
		}
		return NPCDecision{Action: domain.ActionWait}
	}

	playerAlive := player != nil && player.Alive()

	// Зрение монстра симметрично зрению героя: тот же shadowcasting,
	// тот же радиус.
	seesPlayer := playerAlive && CanSee(g, npc.Pos, player.Pos, domain.VisionRadius)

	if seesPlayer {
		npc.AI.SpotPlayer(player.Pos)
	}

	switch npc.AI.State {
	case domain.AIStateIdle:
		return NPCDecision{Action: domain.ActionWait}

	case domain.AIStateAttacking:
		if seesPlayer && npc.Pos.IsAdjacent(player.Pos) {
			return NPCDecision{Action: domain.ActionAttack, Target: player}
		}
		// Герой вырвался из ближнего боя - возвращаемся к погоне.
		npc.AI.State = domain.AIStateChasing
		fallthrough

	case domain.AIStateChasing:
		if seesPlayer && npc.Pos.IsAdjacent(player.Pos) {
			npc.AI.EngageMelee(player.Pos)
			return NPCDecision{Action: domain.ActionAttack, Target: player}
		}

		goal := npc.AI.LastKnown
		if !npc.AI.HasLastKnown {
			npc.AI.LoseTrail()
			return NPCDecision{Action: domain.ActionWait}
		}

		// Дошли до последней известной точки, героя там нет - след потерян.
		if !seesPlayer && npc.Pos == goal {
			aiLogger.Debug("NPC reached last known position, trail lost.")
			npc.AI.LoseTrail()
			return NPCDecision{Action: domain.ActionWait}
		}

		dx, dy := NextStepTowards(g, npc.Pos, goal)
		if dx == 0 && dy == 0 {
			return NPCDecision{Action: domain.ActionWait}
		}
		res := CalculateMove(npc, dx, dy, g)
		if res.BlockedBy != nil && res.BlockedBy.IsPlayer() {
			npc.AI.EngageMelee(player.Pos)
			return NPCDecision{Action: domain.ActionAttack, Target: res.BlockedBy}
		}
		if !res.HasMoved {
			return NPCDecision{Action: domain.ActionWait}
		}
		return NPCDecision{Action: domain.ActionMove, Dx: dx, Dy: dy}
	}

	return NPCDecision{Action: domain.ActionWait}
}

// ExecuteNPCTurn выполняет полный ход монстра: решение ИИ, применение
// действия и тик его статусов в конце. Возвращает сообщения для лога героя.
func ExecuteNPCTurn(npc *domain.Entity, player *domain.Entity, g *domain.Grid, rng *rand.Rand) []string {
	var messages []string

	decision := ComputeNPCAction(npc, player, g, rng)

	switch decision.Action {
	case domain.ActionMove:
		if _, err := ExecuteMove(npc, decision.Dx, decision.Dy, g); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "ai_system",
				"npc_id":    npc.ID,
			}).WithError(err).Debug("NPC move rejected.")
		}
	case domain.ActionAttack:
		if decision.Target != nil {
			res := ResolveAttack(g, npc, decision.Target)
			messages = append(messages, res.Messages...)
		}
	}

	// Статусы сгорают в конце собственного хода сущности.
	for _, expired := range npc.TickStatuses() {
		if expired == domain.StatusConfused {
			messages = append(messages, fmt.Sprintf("%s приходит в себя!", npc.Name))
		}
	}

	return messages
}
