package actions

import "tombs-server/internal/engine/handlers"

// HandleInit - первая команда клиента. Возвращает приветствие; свежий
// снимок мира клиент получит сразу после, ход не тратится.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Messages: []string{"Добро пожаловать, странник! Готовься к встрече с Гробницами Древних Королей."},
		MsgType:  "INFO",
	}, nil
}
