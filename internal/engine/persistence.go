package engine

import (
	"fmt"
	"math/rand"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/infrastructure/storage"
	"tombs-server/internal/network"
	"tombs-server/pkg/api"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Snapshot делает полный слепок симуляции для сохранения на диск.
// Предметы в рюкзаке героя сериализуются внутри его блоба, поэтому из
// общего списка сущностей исключаются - иначе при загрузке они
// задвоились бы: копия в инвентаре плюс копия на полу.
// ВНИМАНИЕ: вызывать только при остановленном игровом цикле.
func (s *GameService) Snapshot() *storage.Snapshot {
	carried := make(map[types.EntityID]bool)
	if s.Player != nil && s.Player.Inventory != nil {
		for _, item := range s.Player.Inventory.Items {
			carried[item.ID] = true
		}
	}

	entities := make([]*domain.Entity, 0, len(s.Current.Entities))
	for _, e := range s.Current.Entities {
		if carried[e.ID] {
			continue
		}
		entities = append(entities, e)
	}

	return &storage.Snapshot{
		Seed:     s.Config.Seed,
		Depth:    s.Current.Depth,
		Turn:     s.Current.Turn,
		GameOver: s.Current.GameOver,
		Grid:     s.Current.Grid,
		Entities: entities,
	}
}

// RestoreService поднимает сервис из снимка: карта и сущности берутся
// из файла как есть, без перегенерации уровня.
func RestoreService(snap *storage.Snapshot) (*GameService, error) {
	s := &GameService{
		Config:         Config{Seed: snap.Seed},
		CommandChan:    make(chan domain.InternalCommand, 100),
		adminChan:      make(chan adminRequest),
		Hub:            network.NewBroadcaster(),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
		adminHandlers:  make(map[string]handlers.HandlerFunc),
	}
	s.registerHandlers()

	inst := &Instance{
		Depth:       snap.Depth,
		Grid:        snap.Grid,
		TurnManager: NewTurnManager(),
		Turn:        snap.Turn,
		GameOver:    snap.GameOver,
		Logs:        []api.LogEntry{},
		Rng:         rand.New(rand.NewSource(snap.Seed + int64(snap.Depth))),
		Seed:        snap.Seed + int64(snap.Depth),
		service:     s,
	}

	for _, e := range snap.Entities {
		if e.IsPlayer() {
			s.Player = e
		}
		inst.Entities = append(inst.Entities, e)
		inst.Grid.RegisterEntity(e)
		inst.Grid.AddEntity(e)
		if e.IsMonster() && e.Alive() {
			inst.TurnManager.AddEntity(e)
		}
		// Лестница на загруженной карте уже помечена в тайлах.
		if e.Type == domain.EntityTypeStairs {
			inst.Stairs = e.Pos
		}
	}

	if s.Player == nil {
		return nil, fmt.Errorf("snapshot has no player entity")
	}

	// Предметы из рюкзака возвращаются в реестр: после выбрасывания
	// их снова можно найти по ID.
	if s.Player.Inventory != nil {
		for _, item := range s.Player.Inventory.Items {
			inst.Grid.RegisterEntity(item)
		}
	}

	s.Current = inst
	inst.Player = s.Player
	inst.RefreshFOV()

	logger.Log.WithFields(logrus.Fields{
		"depth": snap.Depth,
		"turn":  snap.Turn,
	}).Info("Game restored from snapshot")

	return s, nil
}
