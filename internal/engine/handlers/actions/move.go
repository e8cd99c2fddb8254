package actions

import (
	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
	"tombs-server/pkg/api"
)

// HandleMove обрабатывает шаг героя в одном из 8 направлений.
// Шаг в живого монстра превращается в атаку ближнего боя.
// Шаг в стену или за границу карты - ошибка, ход сохраняется.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.Grid)

	if res.OutOfBounds {
		return handlers.EmptyResult(), domain.ErrOutOfBounds
	}
	if res.IsWall {
		return handlers.EmptyResult(), domain.ErrBlocked
	}

	if res.BlockedBy != nil {
		if !res.BlockedBy.Alive() {
			// Труп не блокирует: CalculateMove не вернул бы его.
			return handlers.EmptyResult(), domain.ErrBlocked
		}
		attack := systems.ResolveAttack(ctx.Grid, ctx.Actor, res.BlockedBy)
		return handlers.Result{
			Messages:  attack.Messages,
			MsgType:   "COMBAT",
			TurnSpent: true,
		}, nil
	}

	if err := ctx.Grid.MoveEntity(ctx.Actor, res.NewPos); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{TurnSpent: true}, nil
}
