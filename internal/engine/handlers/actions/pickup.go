package actions

import (
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
)

// HandlePickup - подбор предмета с тайла героя. Payload не нужен:
// подбирается верхний предмет под ногами.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	msg, err := systems.TryPickup(ctx.Actor, ctx.Grid)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Messages:  []string{msg},
		MsgType:   "INFO",
		TurnSpent: true,
	}, nil
}
