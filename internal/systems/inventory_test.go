package systems

import (
	"errors"
	"testing"

	"tombs-server/internal/domain"
)

func TestTryPickup(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	potion := newTestItem(1, "зелье лечения", &domain.ItemComponent{
		Kind:       domain.ItemPotion,
		HealAmount: domain.HealAmount,
	})
	potion.Pos = player.Pos
	g.AddEntity(player)
	g.RegisterEntity(potion)
	g.AddEntity(potion)

	msg, err := TryPickup(player, g)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if msg == "" {
		t.Error("Expected a pickup message")
	}

	// Владение атомарно: предмет ушёл с карты и появился в рюкзаке
	if player.Inventory.FindItem(potion.ID) == nil {
		t.Error("Item must be in the inventory")
	}
	for _, e := range g.GetEntitiesAt(5, 5) {
		if e.ID == potion.ID {
			t.Error("Item must leave the map tile")
		}
	}
	// Но остаётся в реестре: он всё ещё существует
	if g.GetEntity(potion.ID) == nil {
		t.Error("Item must stay registered while carried")
	}
}

func TestTryPickup_EmptyTile(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	g.AddEntity(player)

	_, err := TryPickup(player, g)
	if !errors.Is(err, domain.ErrNoSuchItem) {
		t.Fatalf("Expected ErrNoSuchItem, got %v", err)
	}
}

func TestTryPickup_InventoryFull(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	player.Inventory.MaxSlots = 1
	g.AddEntity(player)

	first := newTestItem(1, "свиток", &domain.ItemComponent{
		Kind: domain.ItemScroll, Scroll: domain.ScrollLightning,
	})
	player.Inventory.AddItem(first)

	second := newTestItem(2, "зелье лечения", &domain.ItemComponent{
		Kind: domain.ItemPotion, HealAmount: domain.HealAmount,
	})
	second.Pos = player.Pos
	g.AddEntity(second)

	_, err := TryPickup(player, g)
	if !errors.Is(err, domain.ErrInventoryFull) {
		t.Fatalf("Expected ErrInventoryFull, got %v", err)
	}
	// Предмет остался лежать на тайле
	found := false
	for _, e := range g.GetEntitiesAt(5, 5) {
		if e.ID == second.ID {
			found = true
		}
	}
	if !found {
		t.Error("Rejected item must stay on the map")
	}
}

func TestTryDrop(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	g.AddEntity(player)

	sword := newTestItem(1, "меч", &domain.ItemComponent{
		Kind: domain.ItemWeapon, AttackBonus: 3,
	})
	player.Inventory.AddItem(sword)
	TryEquip(player, sword)

	_, err := TryDrop(player, sword.ID, g)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Экипированный предмет перед сбросом снимается
	if player.Equipment.Weapon != nil {
		t.Error("Dropped weapon must be unequipped")
	}
	if player.Inventory.FindItem(sword.ID) != nil {
		t.Error("Dropped item must leave the inventory")
	}
	if sword.Pos != player.Pos {
		t.Error("Dropped item must land on the owner's tile")
	}

	found := false
	for _, e := range g.GetEntitiesAt(5, 5) {
		if e.ID == sword.ID {
			found = true
		}
	}
	if !found {
		t.Error("Dropped item must be back on the map")
	}
}

func TestTryDrop_UnknownItem(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	g.AddEntity(player)

	ghost := newTestItem(99, "призрак", &domain.ItemComponent{Kind: domain.ItemPotion})

	_, err := TryDrop(player, ghost.ID, g)
	if !errors.Is(err, domain.ErrNoSuchItem) {
		t.Fatalf("Expected ErrNoSuchItem, got %v", err)
	}
}

func TestTryEquip_SwapAndToggle(t *testing.T) {
	player := newTestPlayer(5, 5)

	sword := newTestItem(1, "меч", &domain.ItemComponent{
		Kind: domain.ItemWeapon, AttackBonus: 3,
	})
	dagger := newTestItem(2, "кинжал", &domain.ItemComponent{
		Kind: domain.ItemWeapon, AttackBonus: 1,
	})
	player.Inventory.AddItem(sword)
	player.Inventory.AddItem(dagger)

	if _, err := TryEquip(player, sword); err != nil {
		t.Fatal(err)
	}
	if player.Equipment.Weapon != sword {
		t.Fatal("Sword must occupy the weapon slot")
	}

	// Смена оружия: старое возвращается в рюкзак, не исчезает
	if _, err := TryEquip(player, dagger); err != nil {
		t.Fatal(err)
	}
	if player.Equipment.Weapon != dagger {
		t.Fatal("Dagger must replace the sword")
	}
	if player.Inventory.FindItem(sword.ID) == nil {
		t.Error("Replaced weapon must stay in the inventory")
	}

	// Повторное использование надетого предмета снимает его
	if _, err := TryEquip(player, dagger); err != nil {
		t.Fatal(err)
	}
	if player.Equipment.Weapon != nil {
		t.Error("Re-using an equipped item must unequip it")
	}
}
