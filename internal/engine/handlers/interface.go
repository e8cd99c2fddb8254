package handlers

import (
	"encoding/json"

	"tombs-server/internal/domain"
)

// Context передает хендлеру состояние уровня.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Grid  *domain.Grid
	Actor *domain.Entity // Тот, кто выполняет команду (герой)

	// Visible - FOV героя, рассчитанный до выполнения команды.
	// Проверки дальности свитков считаются от него.
	Visible map[int]bool

	// Stairs - позиция лестницы вниз на текущем уровне.
	Stairs domain.Position
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Messages []string // Строки игрового лога
	MsgType  string   // Тип лога (INFO, COMBAT, ERROR)

	// TurnSpent true, если действие потратило ход и монстры получают
	// свою фазу. Доменные ошибки всегда возвращаются с TurnSpent=false.
	TurnSpent bool

	// Event - событие для движка (смена уровня, конец игры).
	Event domain.EventType
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
