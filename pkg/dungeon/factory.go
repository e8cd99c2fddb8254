package dungeon

import (
	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
)

// CreatePlayer создает героя. Он живёт дольше любого уровня, поэтому
// его ID не привязан к глубине и всегда имеет нулевой спавн-индекс:
// в очереди хода герой всегда первый.
func CreatePlayer(controllerID string, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:           types.PackEntityID(uint8(domain.EntityTypePlayer), 0, 0),
		Type:         domain.EntityTypePlayer,
		Name:         "герой",
		ControllerID: controllerID,
		Pos:          pos,
		Render:       &domain.RenderComponent{Glyph: types.MakeGlyph(0xFFFFFF, '@')},
		Stats: &domain.StatsComponent{
			HP: 30, MaxHP: 30, Power: 5, Defense: 2, Level: 1,
		},
		Statuses: domain.StatusMap{},
		Inventory: &domain.InventoryComponent{
			MaxSlots: domain.InventoryCapacity,
		},
		Equipment: &domain.EquipmentComponent{},
	}
}
