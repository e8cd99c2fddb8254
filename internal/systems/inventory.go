package systems

import (
	"fmt"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
)

// --- PICKUP ---

// TryPickup перекладывает предмет с тайла героя в его инвентарь.
// Атомарно: предмет либо в мире, либо в рюкзаке, двух владельцев не бывает.
func TryPickup(actor *domain.Entity, g *domain.Grid) (string, error) {
	if actor.Inventory == nil {
		return "", fmt.Errorf("%s не может нести предметы", actor.Name)
	}

	var item *domain.Entity
	for _, e := range g.GetEntitiesAt(actor.Pos.X, actor.Pos.Y) {
		if e.Type == domain.EntityTypeItem && e.Item != nil {
			item = e
			break
		}
	}
	if item == nil {
		return "", fmt.Errorf("здесь нечего подбирать: %w", domain.ErrNoSuchItem)
	}

	if !actor.Inventory.AddItem(item) {
		return "", fmt.Errorf("рюкзак полон, нельзя взять %s: %w", item.Name, domain.ErrInventoryFull)
	}

	// Убираем из мира. Из реестра не удаляем: предмет жив, просто в рюкзаке.
	g.RemoveEntity(item)

	return fmt.Sprintf("%s подбирает %s.", actor.Name, item.Name), nil
}

// --- DROP ---

// TryDrop кладёт предмет из инвентаря на тайл героя. Экипированный
// предмет перед выбрасыванием снимается.
func TryDrop(actor *domain.Entity, itemID types.EntityID, g *domain.Grid) (string, error) {
	if actor.Inventory == nil {
		return "", fmt.Errorf("нет инвентаря")
	}

	item := actor.Inventory.FindItem(itemID)
	if item == nil {
		return "", fmt.Errorf("предмет %s не найден: %w", itemID, domain.ErrNoSuchItem)
	}

	if actor.Equipment != nil {
		if actor.Equipment.Weapon == item {
			actor.Equipment.Weapon = nil
		}
		if actor.Equipment.Armor == item {
			actor.Equipment.Armor = nil
		}
	}

	actor.Inventory.RemoveItem(itemID)
	item.Pos = actor.Pos
	g.AddEntity(item)

	return fmt.Sprintf("%s выбрасывает %s.", actor.Name, item.Name), nil
}

// --- EQUIP ---

// TryEquip надевает оружие или броню. Повторное использование надетого
// предмета снимает его. Занятый слот освобождается автоматически:
// старый предмет остаётся в рюкзаке (Equipment хранит только ссылки,
// экипированные вещи никогда не покидают Inventory.Items).
func TryEquip(actor *domain.Entity, item *domain.Entity) (string, error) {
	if actor.Equipment == nil {
		return "", fmt.Errorf("нет слотов экипировки")
	}

	var slot **domain.Entity
	switch item.Item.Kind {
	case domain.ItemWeapon:
		slot = &actor.Equipment.Weapon
	case domain.ItemArmor:
		slot = &actor.Equipment.Armor
	default:
		return "", fmt.Errorf("этот предмет нельзя надеть")
	}

	if *slot == item {
		*slot = nil
		return fmt.Sprintf("%s снимает %s.", actor.Name, item.Name), nil
	}

	old := *slot
	*slot = item

	if old != nil {
		return fmt.Sprintf("%s снимает %s и берет %s.", actor.Name, old.Name, item.Name), nil
	}
	return fmt.Sprintf("%s экипирует %s.", actor.Name, item.Name), nil
}
