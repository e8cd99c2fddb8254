package agent

import (
	"encoding/json"
	"math/rand"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/engine"
	"tombs-server/internal/systems"
	"tombs-server/pkg/api"
	"tombs-server/pkg/logger"
)

// Bot — "игрок-компьютер" (Headless Agent). Это пример ВНЕШНЕГО клиента:
// он подписывается на хаб так же, как настоящий игрок через WebSocket,
// получает те же снимки мира и отвечает теми же командами. Никакого
// доступа к скрытому состоянию у него нет: он видит ровно то, что видит
// герой.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> запускается в горутине, на каждый снимок отвечает командой.
//  3. makeMove -> восстанавливает локальную карту из DTO и решает, что делать.
type Bot struct {
	EntityID types.EntityID
	Service  *engine.GameService
	Inbox    chan api.ServerResponse
	Rng      *rand.Rand
}

func NewBot(entityID types.EntityID, service *engine.GameService, seed int64) *Bot {
	logger.Log.WithField("entity_id", entityID).Info("Creating headless agent")
	return &Bot{
		EntityID: entityID,
		Service:  service,
		Inbox:    service.Hub.Register(entityID),
		Rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.EntityID)

	for state := range b.Inbox {
		if state.Type == "GAME_OVER" {
			logger.Log.WithField("turn", state.Turn).Info("Agent died, shutting down")
			return
		}
		b.makeMove(state)
	}
}

// makeMove — мозг бота. Жадная стратегия:
//  1. мало здоровья и есть зелье -> выпить;
//  2. видим монстра -> шаг к ближайшему (шаг в упор станет атакой);
//  3. стоим на лестнице -> спуститься;
//  4. видим лестницу -> идти к ней;
//  5. иначе случайный шаг (исследование).
func (b *Bot) makeMove(state api.ServerResponse) {
	grid, self := b.buildLocalGrid(state)
	if self == nil {
		b.sendWait()
		return
	}

	if state.Player != nil && state.Player.HP*2 < state.Player.MaxHP {
		if potionID := findPotion(state.Inventory); potionID != "" {
			b.sendUse(potionID)
			return
		}
	}

	myPos := domain.Position{X: self.Pos.X, Y: self.Pos.Y}

	if target := nearestMonster(state, myPos); target != nil {
		goal := domain.Position{X: target.Pos.X, Y: target.Pos.Y}
		if dx, dy := systems.NextStepTowards(grid, myPos, goal); dx != 0 || dy != 0 {
			b.sendMove(dx, dy)
			return
		}
	}

	if stairs, ok := findStairs(state); ok {
		if stairs == myPos {
			b.sendDescend()
			return
		}
		if dx, dy := systems.NextStepTowards(grid, myPos, stairs); dx != 0 || dy != 0 {
			b.sendMove(dx, dy)
			return
		}
	}

	// Исследование: случайный допустимый шаг
	dx, dy := b.Rng.Intn(3)-1, b.Rng.Intn(3)-1
	if dx == 0 && dy == 0 {
		b.sendWait()
		return
	}
	b.sendMove(dx, dy)
}

// buildLocalGrid восстанавливает карту из снимка. Неисследованные тайлы
// считаются стенами: бот не строит путь через неизвестность.
func (b *Bot) buildLocalGrid(state api.ServerResponse) (*domain.Grid, *api.EntityView) {
	if state.Grid == nil {
		return nil, nil
	}
	grid := domain.NewGrid(state.Grid.Width, state.Grid.Height, state.Depth)
	for _, t := range state.Map {
		if t.Kind != domain.TileWall.String() {
			grid.Map[t.Y][t.X].Kind = domain.TileFloor
		}
	}

	var self *api.EntityView
	for idx := range state.Entities {
		e := &state.Entities[idx]
		if e.ID == state.MyEntityID {
			self = e
		}
	}
	return grid, self
}

func nearestMonster(state api.ServerResponse, from domain.Position) *api.EntityView {
	var best *api.EntityView
	bestDist := int(^uint(0) >> 1)
	for idx := range state.Entities {
		e := &state.Entities[idx]
		if e.Type != domain.EntityTypeMonster.String() {
			continue
		}
		if e.Stats != nil && e.Stats.IsDead {
			continue
		}
		d := from.DistanceSquaredTo(domain.Position{X: e.Pos.X, Y: e.Pos.Y})
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

func findStairs(state api.ServerResponse) (domain.Position, bool) {
	for _, t := range state.Map {
		if t.Kind == domain.TileStairsDown.String() {
			return domain.Position{X: t.X, Y: t.Y}, true
		}
	}
	return domain.Position{}, false
}

func findPotion(inv *api.InventoryView) string {
	if inv == nil {
		return ""
	}
	for _, item := range inv.Items {
		if item.Kind == domain.ItemPotion.String() {
			return item.ID
		}
	}
	return ""
}

// --- Отправка команд ---

func (b *Bot) send(action string, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	b.Service.ProcessCommand(api.ClientCommand{
		Token:   b.EntityID.Wire(),
		Action:  action,
		Payload: raw,
	})
}

func (b *Bot) sendMove(dx, dy int) {
	b.send("MOVE", api.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) sendWait() {
	b.send("WAIT", nil)
}

func (b *Bot) sendUse(itemID string) {
	b.send("USE", api.ItemPayload{ItemID: itemID})
}

func (b *Bot) sendDescend() {
	b.send("DESCEND", nil)
}
