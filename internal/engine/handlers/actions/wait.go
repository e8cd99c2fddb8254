package actions

import (
	"tombs-server/internal/engine/handlers"
)

// HandleWait - герой пропускает ход. Всегда успешно, ход тратится.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{TurnSpent: true}, nil
}
