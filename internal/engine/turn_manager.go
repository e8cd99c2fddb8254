package engine

import (
	"container/heap"
	"sort"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
)

// TurnManager хранит монстров уровня в порядке их хода.
// Порядок строго детерминирован: приоритетом служит спавн-индекс,
// упакованный в младшие биты EntityID, поэтому монстры всегда ходят
// в порядке появления на уровне. Герой в очереди не участвует: его
// фаза всегда первая и обрабатывается отдельно.
type TurnManager struct {
	queue   TurnQueue
	itemMap map[types.EntityID]*TurnItem
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[types.EntityID]*TurnItem),
	}
}

// AddEntity регистрирует монстра в системе ходов.
func (tm *TurnManager) AddEntity(e *domain.Entity) {
	if e.AI == nil {
		return
	}

	item := &TurnItem{
		Value:    e,
		Priority: e.ID.Index(),
	}

	heap.Push(&tm.queue, item)
	tm.itemMap[e.ID] = item

	logger.Log.WithField("entity_id", e.ID).Debug("Entity added to TurnManager")
}

// RemoveEntity убирает сущность из системы ходов (смерть, смена уровня).
func (tm *TurnManager) RemoveEntity(entityID types.EntityID) {
	if item, ok := tm.itemMap[entityID]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, entityID)
	}
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// OrderedEntities возвращает монстров в порядке хода. Снимок делается
// на начало фазы монстров: монстр, умерший в ходе фазы, пропускается
// вызывающим кодом по проверке Alive.
func (tm *TurnManager) OrderedEntities() []*domain.Entity {
	snapshot := make([]*TurnItem, len(tm.queue))
	copy(snapshot, tm.queue)
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Priority < snapshot[j].Priority
	})

	result := make([]*domain.Entity, 0, len(snapshot))
	for _, item := range snapshot {
		result = append(result, item.Value)
	}
	return result
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":       item.Value.ID,
			"name":     item.Value.Name,
			"priority": item.Priority,
			"index":    item.Index,
		})
	}
	return result
}
