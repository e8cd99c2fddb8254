package actions

import (
	"tombs-server/internal/core/types"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
	"tombs-server/pkg/api"
)

// HandleDrop - выбросить предмет из инвентаря на тайл героя.
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	itemID, err := types.ParseEntityID(p.ItemID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	msg, err := systems.TryDrop(ctx.Actor, itemID, ctx.Grid)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Messages:  []string{msg},
		MsgType:   "INFO",
		TurnSpent: true,
	}, nil
}
