package domain

import "tombs-server/internal/core/types"

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Glyph types.Glyph `json:"glyph"` // Символ + цвет ('o'-орк, '!'-зелье, '@'-герой)
}

// --- СУЩНОСТЬ ---

// Entity — единая форма для игрока, монстров, предметов и лестницы.
// Поведение определяется тегом Type и набором компонентов:
// если компонент nil, свойство отсутствует.
type Entity struct {
	ID   types.EntityID `json:"id"`
	Type EntityType     `json:"type"`
	Name string         `json:"name"`

	// ControllerID - ID сессии, которая управляет этой сущностью.
	// Если пусто - управляется AI.
	ControllerID string `json:"controllerId,omitempty"`

	Pos Position `json:"pos"`

	Render    *RenderComponent    `json:"render,omitempty"`
	Stats     *StatsComponent     `json:"stats,omitempty"`
	AI        *AIComponent        `json:"ai,omitempty"`
	Statuses  StatusMap           `json:"statuses,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
	Equipment *EquipmentComponent `json:"equipment,omitempty"`
}

// Alive сообщает, что сущность — живое существо.
func (e *Entity) Alive() bool {
	return e.Stats != nil && !e.Stats.IsDead
}

// Blocks сообщает, занимает ли сущность клетку.
// Предметы, лестница и трупы проходимы.
func (e *Entity) Blocks() bool {
	return e.Alive()
}

// IsPlayer — короткая проверка тега.
func (e *Entity) IsPlayer() bool {
	return e.Type == EntityTypePlayer
}

// IsMonster — короткая проверка тега.
func (e *Entity) IsMonster() bool {
	return e.Type == EntityTypeMonster
}
