package storage

import (
	"bytes"
	"testing"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
)

func sampleSnapshot() *Snapshot {
	grid := domain.NewGrid(10, 8, 3)
	grid.Map[2][3].Kind = domain.TileFloor
	grid.Map[2][3].Visibility = domain.VisibilityVisible
	grid.Map[2][4].Kind = domain.TileStairsDown
	grid.Map[2][4].Visibility = domain.VisibilityRemembered
	grid.Map[5][5].Kind = domain.TileFloor
	grid.Map[5][5].Corpse = true

	sword := &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypeItem), 3, 5),
		Type: domain.EntityTypeItem,
		Name: "меч",
		Item: &domain.ItemComponent{Kind: domain.ItemWeapon, AttackBonus: 3},
	}

	player := &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypePlayer), 0, 0),
		Type: domain.EntityTypePlayer,
		Name: "Герой",
		Pos:  domain.Position{X: 3, Y: 2},
		Stats: &domain.StatsComponent{
			HP: 17, MaxHP: 50, Power: 5, Defense: 2, XP: 120, Level: 2,
		},
		Inventory: &domain.InventoryComponent{
			Items:    []*domain.Entity{sword},
			MaxSlots: domain.InventoryCapacity,
		},
		Equipment: &domain.EquipmentComponent{Weapon: sword},
	}

	orc := &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypeMonster), 3, 1),
		Type: domain.EntityTypeMonster,
		Name: "орк",
		Pos:  domain.Position{X: 4, Y: 2},
		Stats: &domain.StatsComponent{
			HP: 10, MaxHP: 10, Power: 3, XP: 35,
		},
		AI:       &domain.AIComponent{State: domain.AIStateChasing, LastKnown: domain.Position{X: 3, Y: 2}, HasLastKnown: true},
		Statuses: domain.StatusMap{domain.StatusConfused: 2},
	}

	return &Snapshot{
		Seed:     42,
		Depth:    3,
		Turn:     99,
		GameOver: false,
		Grid:     grid,
		Entities: []*domain.Entity{player, orc},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	if err := writeBinary(&buf, snap); err != nil {
		t.Fatalf("writeBinary failed: %v", err)
	}

	back, err := readBinary(&buf)
	if err != nil {
		t.Fatalf("readBinary failed: %v", err)
	}

	if back.Seed != 42 || back.Depth != 3 || back.Turn != 99 || back.GameOver {
		t.Errorf("Header fields lost: %+v", back)
	}

	if back.Grid.Width != 10 || back.Grid.Height != 8 {
		t.Fatalf("Grid dimensions lost: %dx%d", back.Grid.Width, back.Grid.Height)
	}
	if back.Grid.Map[2][3].Kind != domain.TileFloor ||
		back.Grid.Map[2][3].Visibility != domain.VisibilityVisible {
		t.Error("Tile kind/visibility lost for (3,2)")
	}
	if back.Grid.Map[2][4].Kind != domain.TileStairsDown ||
		back.Grid.Map[2][4].Visibility != domain.VisibilityRemembered {
		t.Error("Stairs tile lost")
	}
	if back.Grid.Map[0][0].Kind != domain.TileWall {
		t.Error("Untouched wall tile lost")
	}
	if !back.Grid.Map[5][5].Corpse {
		t.Error("Corpse mark lost for (5,5)")
	}
	if back.Grid.Map[2][3].Corpse {
		t.Error("Corpse mark appeared on a clean tile")
	}

	if len(back.Entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(back.Entities))
	}

	player := back.Entities[0]
	if player.Name != "Герой" || player.Stats.HP != 17 || player.Stats.Level != 2 {
		t.Errorf("Player state lost: %+v", player)
	}

	orc := back.Entities[1]
	if orc.AI == nil || orc.AI.State != domain.AIStateChasing || !orc.AI.HasLastKnown {
		t.Errorf("Monster AI state lost: %+v", orc.AI)
	}
	if orc.Statuses[domain.StatusConfused] != 2 {
		t.Error("Status timers lost")
	}
}

func TestSnapshot_EquipmentPointerIdentity(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	if err := writeBinary(&buf, snap); err != nil {
		t.Fatal(err)
	}
	back, err := readBinary(&buf)
	if err != nil {
		t.Fatal(err)
	}

	player := back.Entities[0]
	if player.Equipment.Weapon == nil {
		t.Fatal("Equipped weapon lost")
	}
	// Ссылочная целостность: слот указывает на предмет ИЗ инвентаря,
	// а не на его копию
	if player.Equipment.Weapon != player.Inventory.FindItem(player.Equipment.Weapon.ID) {
		t.Error("Equipment slot must point at the inventory item, not a copy")
	}
}

func TestSnapshot_SaveLoadDisk(t *testing.T) {
	svc := NewSnapshotService(t.TempDir())

	snap := sampleSnapshot()
	path, err := svc.Save(snap)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.Seed != snap.Seed || back.Depth != snap.Depth {
		t.Errorf("Disk round trip lost the header: %+v", back)
	}
}

func TestReadBinary_RejectsBadMagic(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	if err := writeBinary(&buf, snap); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	copy(data[:4], "XXXX")

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Error("Expected an error for a corrupted magic header")
	}
}

func TestReadBinary_RejectsUnknownVersion(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	if err := writeBinary(&buf, snap); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	data[4] = 99 // Version: little-endian, младший байт

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Error("Expected an error for an unsupported version")
	}
}
