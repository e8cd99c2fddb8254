package domain

import "tombs-server/internal/core/types"

// ItemComponent описывает предмет в игре.
// Любая Entity с этим компонентом становится предметом.
type ItemComponent struct {
	Kind ItemKind `json:"kind"`

	// Зелья
	HealAmount int `json:"healAmount,omitempty"`

	// Оружие и броня (аддитивные модификаторы к Power/Defense)
	AttackBonus  int `json:"attackBonus,omitempty"`
	DefenseBonus int `json:"defenseBonus,omitempty"`

	// Свитки
	Scroll ScrollKind `json:"scroll,omitempty"`
}

// InventoryComponent хранит предметы у сущности.
// Владение атомарно: предмет либо лежит на карте (есть позиция,
// зарегистрирован в Grid), либо в инвентаре — никогда и там, и там.
type InventoryComponent struct {
	Items    []*Entity `json:"items"`
	MaxSlots int       `json:"maxSlots"`
}

// AddItem добавляет предмет в инвентарь. false — нет места.
func (inv *InventoryComponent) AddItem(item *Entity) bool {
	if inv == nil || item == nil || item.Item == nil {
		return false
	}
	if len(inv.Items) >= inv.MaxSlots {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveItem удаляет предмет из инвентаря и возвращает его.
func (inv *InventoryComponent) RemoveItem(itemID types.EntityID) *Entity {
	if inv == nil {
		return nil
	}
	for i, item := range inv.Items {
		if item.ID == itemID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem ищет предмет по ID, не извлекая.
func (inv *InventoryComponent) FindItem(itemID types.EntityID) *Entity {
	if inv == nil {
		return nil
	}
	for _, item := range inv.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// EquipmentComponent хранит экипированные предметы.
// Экипированный предмет ОСТАЁТСЯ в Inventory.Items; Equipment хранит
// только ссылку на активный слот.
type EquipmentComponent struct {
	Weapon *Entity `json:"weapon,omitempty"`
	Armor  *Entity `json:"armor,omitempty"`
}

// AttackBonus возвращает суммарный бонус атаки от экипировки.
func (eq *EquipmentComponent) AttackBonus() int {
	if eq == nil || eq.Weapon == nil || eq.Weapon.Item == nil {
		return 0
	}
	return eq.Weapon.Item.AttackBonus
}

// DefenseBonus возвращает суммарный бонус защиты от экипировки.
func (eq *EquipmentComponent) DefenseBonus() int {
	if eq == nil || eq.Armor == nil || eq.Armor.Item == nil {
		return 0
	}
	return eq.Armor.Item.DefenseBonus
}
