package engine

import (
	"errors"
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
	"tombs-server/pkg/api"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Instance представляет собой один запущенный уровень подземелья.
// Одновременно живёт ровно один: при спуске старый уровень выбрасывается
// целиком вместе со всеми сущностями, кроме героя.
type Instance struct {
	Depth int
	Grid  *domain.Grid

	// Entities - все сущности уровня, включая героя после AttachPlayer.
	Entities    []*domain.Entity
	TurnManager *TurnManager

	Player *domain.Entity
	Stairs domain.Position

	// Visible - FOV героя, пересчитывается после каждого потраченного хода.
	Visible map[int]bool

	Turn int            // Номер полного круга (герой + все монстры)
	Logs []api.LogEntry // Накопленные с последней рассылки сообщения

	Rng  *rand.Rand // Локальный генератор уровня
	Seed int64      // Сид, с которого уровень начался

	// GameOver выставляется при смерти героя; дальше принимаются
	// только справочные команды.
	GameOver bool

	startPos domain.Position
	service  *GameService
}

// NewInstance генерирует уровень на глубине depth и населяет его.
func NewInstance(depth int, seed int64, service *GameService) (*Instance, error) {
	level, err := dungeon.Generate(depth, seed)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		Depth:       depth,
		Grid:        level.Grid,
		TurnManager: NewTurnManager(),
		Stairs:      level.Stairs,
		Logs:        []api.LogEntry{},
		Rng:         rand.New(rand.NewSource(seed)),
		Seed:        seed,
		service:     service,
	}

	for _, e := range level.Entities {
		inst.addEntity(e)
	}

	inst.startPos = level.StartPos
	return inst, nil
}

// AttachPlayer помещает героя на стартовую позицию уровня.
func (i *Instance) AttachPlayer(player *domain.Entity) {
	player.Pos = i.startPos
	i.Player = player
	i.addEntity(player)
	i.RefreshFOV()
}

// addEntity добавляет сущность в структуры уровня
func (i *Instance) addEntity(e *domain.Entity) {
	i.Entities = append(i.Entities, e)
	i.Grid.RegisterEntity(e)
	i.Grid.AddEntity(e)
	if e.IsMonster() {
		i.TurnManager.AddEntity(e)
	}
}

// RefreshFOV пересчитывает поле зрения героя и туман войны.
func (i *Instance) RefreshFOV() {
	if i.Player == nil {
		return
	}
	i.Visible = systems.ComputeVisibleTiles(i.Grid, i.Player.Pos, domain.VisionRadius)
	systems.ApplyVisibility(i.Grid, i.Visible)
}

// ExecuteCommand выполняет команду героя в контексте уровня.
// Возвращает событие для движка (переход уровня, конец игры) или
// domain.EventUnknown, если событий нет.
//
// Контракт ходов: доменная ошибка или справочная команда НЕ тратят ход,
// монстры не двигаются и состояние мира не меняется. Успешное игровое
// действие запускает фазу монстров и увеличивает номер хода.
func (i *Instance) ExecuteCommand(cmd domain.InternalCommand) domain.EventType {
	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"instance_depth": i.Depth,
		"action":         cmd.Action.String(),
		"turn":           i.Turn,
	})

	if i.GameOver && !cmd.Action.IsReadOnly() {
		i.AddLog("Вы мертвы. Подземелье больше не слушает ваших приказов.", "ERROR")
		return domain.EventUnknown
	}

	handler, ok := i.service.actionHandlers[cmd.Action]
	if !ok {
		cmdLogger.Warn("No handler registered for action.")
		return domain.EventUnknown
	}

	ctx := handlers.Context{
		Grid:    i.Grid,
		Actor:   i.Player,
		Visible: i.Visible,
		Stairs:  i.Stairs,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		// Ход сохранён: мир не изменился, монстры не двигаются.
		cmdLogger.WithError(err).Info("Command rejected, turn preserved.")
		i.AddLog(errorText(err), "ERROR")
		return domain.EventUnknown
	}

	for _, msg := range result.Messages {
		i.AddLog(msg, result.MsgType)
	}

	if result.TurnSpent {
		i.finishRound()
	}

	if i.GameOver {
		return domain.EventGameOver
	}
	return result.Event
}

// finishRound закрывает полный круг: тикают статусы героя, ходят
// монстры в порядке спавна, обновляется FOV.
func (i *Instance) finishRound() {
	i.Player.TickStatuses()

	i.runMonsterPhase()
	i.Turn++
	i.RefreshFOV()

	if !i.Player.Alive() {
		i.GameOver = true
		logger.Log.WithField("turn", i.Turn).Info("Player died, game over.")
	}
}

// AddLog добавляет сообщение в историю уровня
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, newLogEntry(i.Depth, text, logType))
	logger.Log.WithFields(logrus.Fields{
		"instance_depth": i.Depth,
		"component":      "game_log",
		"log_type":       logType,
	}).Info(text)
}

// DrainLogs отдаёт накопленные сообщения и очищает буфер.
func (i *Instance) DrainLogs() []api.LogEntry {
	logs := i.Logs
	i.Logs = []api.LogEntry{}
	return logs
}

// errorText переводит доменную ошибку в игровое сообщение.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrOutOfBounds):
		return "Туда не пройти: край мира."
	case errors.Is(err, domain.ErrBlocked):
		return "Путь прегражден."
	case errors.Is(err, domain.ErrInventoryFull):
		return "Рюкзак полон."
	case errors.Is(err, domain.ErrNoSuchItem):
		return "Такого предмета нет."
	case errors.Is(err, domain.ErrNoEligibleTarget):
		return "Подходящей цели нет."
	case errors.Is(err, domain.ErrTargetingCancelled):
		return "Ладно, в другой раз."
	}
	return err.Error()
}
