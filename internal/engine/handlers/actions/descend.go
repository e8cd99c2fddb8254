package actions

import (
	"fmt"

	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
)

// HandleDescend - спуск по лестнице. Работает только если герой стоит
// на тайле лестницы; иначе ошибка, ход сохраняется.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Pos != ctx.Stairs {
		return handlers.EmptyResult(), fmt.Errorf("здесь нет лестницы: %w", domain.ErrBlocked)
	}

	return handlers.Result{
		Messages:  []string{"Вы спускаетесь глубже в сердце подземелья..."},
		MsgType:   "INFO",
		TurnSpent: true,
		Event:     domain.EventLevelTransition,
	}, nil
}
