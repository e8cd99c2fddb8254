package systems

import (
	"strings"
	"testing"

	"tombs-server/internal/domain"
)

func TestResolveAttack_DamageFormula(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	orc := newTestMonster(1, 2, 1)

	// power 5 - defense 0 = 5
	res := ResolveAttack(g, player, orc)

	if res.Damage != 5 {
		t.Errorf("Expected damage 5, got %d", res.Damage)
	}
	if orc.Stats.HP != 5 {
		t.Errorf("Expected orc HP 5, got %d", orc.Stats.HP)
	}
	if res.TargetDied {
		t.Error("Orc should survive the first hit")
	}
}

func TestResolveAttack_DefenseAbsorbsToZero(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	orc := newTestMonster(1, 2, 1)
	orc.Stats.Defense = 9 // больше силы героя

	res := ResolveAttack(g, player, orc)

	if res.Damage != 0 {
		t.Errorf("Expected damage 0 (never negative), got %d", res.Damage)
	}
	if orc.Stats.HP != orc.Stats.MaxHP {
		t.Errorf("Expected orc HP untouched, got %d", orc.Stats.HP)
	}
	if len(res.Messages) == 0 || !strings.Contains(res.Messages[0], "без эффекта") {
		t.Errorf("Expected distinct 'no effect' message, got %v", res.Messages)
	}
}

func TestResolveAttack_EquipmentBonuses(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	sword := newTestItem(10, "меч", &domain.ItemComponent{
		Kind:        domain.ItemWeapon,
		AttackBonus: 3,
	})
	player.Inventory.AddItem(sword)
	player.Equipment.Weapon = sword

	orc := newTestMonster(1, 2, 1)
	orc.Stats.Defense = 1

	// (5 + 3) - 1 = 7
	res := ResolveAttack(g, player, orc)
	if res.Damage != 7 {
		t.Errorf("Expected damage 7 with weapon bonus, got %d", res.Damage)
	}
}

func TestResolveAttack_KillGrantsXP(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	player.Stats.Power = 100

	orc := newTestMonster(1, 2, 1)

	res := ResolveAttack(g, player, orc)

	if !res.TargetDied {
		t.Fatal("Expected orc to die from a massive hit")
	}
	if res.XPGained != 35 {
		t.Errorf("Expected 35 XP for the orc, got %d", res.XPGained)
	}
	if player.Stats.XP != 35 {
		t.Errorf("Expected player XP 35, got %d", player.Stats.XP)
	}

	// Труп: не блокирует, без ИИ, глиф сменился
	if orc.Blocks() {
		t.Error("Corpse must not block movement")
	}
	if orc.AI != nil {
		t.Error("Corpse must not keep its AI component")
	}
	if orc.Render != nil && orc.Render.Glyph != domain.CorpseGlyph {
		t.Error("Corpse must switch to the corpse glyph")
	}
	if !strings.HasPrefix(orc.Name, "останки") {
		t.Errorf("Expected corpse name, got %q", orc.Name)
	}
}

func TestResolveAttack_MonsterGainsNoXP(t *testing.T) {
	g := newOpenGrid(5, 5)
	orc := newTestMonster(1, 2, 1)
	orc.Stats.Power = 100

	player := newTestPlayer(1, 1)

	res := ResolveAttack(g, orc, player)

	if !res.TargetDied {
		t.Fatal("Expected player to die")
	}
	if res.XPGained != 0 {
		t.Errorf("Monsters must not collect XP, got %d", res.XPGained)
	}
	if orc.Stats.XP != 35 {
		t.Errorf("Orc XP reward must stay untouched, got %d", orc.Stats.XP)
	}
}

func TestResolveAttack_DeadTargetIsNoOp(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	orc := newTestMonster(1, 2, 1)
	KillEntity(g, orc)

	res := ResolveAttack(g, player, orc)
	if res.Damage != 0 || res.TargetDied {
		t.Errorf("Attacking a corpse must be a no-op, got %+v", res)
	}
}

func TestKillEntity_MarksTileCorpse(t *testing.T) {
	g := newOpenGrid(5, 5)
	player := newTestPlayer(1, 1)
	player.Stats.Power = 100
	orc := newTestMonster(1, 2, 1)

	res := ResolveAttack(g, player, orc)
	if !res.TargetDied {
		t.Fatal("Expected orc to die")
	}

	tile := g.Map[1][2]
	if !tile.Corpse {
		t.Error("Expected corpse mark on the death tile")
	}
	if !tile.Walkable() {
		t.Error("Corpse mark must not affect walkability")
	}
	if g.Map[1][1].Corpse {
		t.Error("Attacker's tile must stay clean")
	}
}

func TestAddXP_LevelUp(t *testing.T) {
	player := newTestPlayer(1, 1)

	// Порог первого уровня: 200 + 1*150 = 350
	levels := player.Stats.AddXP(349)
	if levels != 0 || player.Stats.Level != 1 {
		t.Fatalf("349 XP must not level up, got levels=%d level=%d", levels, player.Stats.Level)
	}

	levels = player.Stats.AddXP(1)
	if levels != 1 || player.Stats.Level != 2 {
		t.Fatalf("Expected level 2 after 350 XP, got levels=%d level=%d", levels, player.Stats.Level)
	}
	if player.Stats.XP != 0 {
		t.Errorf("Expected XP counter reset to 0, got %d", player.Stats.XP)
	}
	if player.Stats.MaxHP != 30+domain.LevelUpHPGain {
		t.Errorf("Expected MaxHP raised by %d, got %d", domain.LevelUpHPGain, player.Stats.MaxHP)
	}
}
