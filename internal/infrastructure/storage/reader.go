package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tombs-server/internal/domain"
)

func (s *SnapshotService) Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*Snapshot, error) {
	// 1. Заголовок
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version2 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version2)
	}

	snap := &Snapshot{
		Seed:     header.Seed,
		Depth:    int(header.Depth),
		Turn:     int(header.Turn),
		GameOver: header.GameOver != 0,
	}

	// 2. Карта
	width, height := int(header.Width), int(header.Height)
	grid := domain.NewGrid(width, height, snap.Depth)

	tiles := make([]byte, width*height*3)
	if _, err := io.ReadFull(r, tiles); err != nil {
		return nil, fmt.Errorf("failed to read tiles: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * 3
			grid.Map[y][x].Kind = domain.TileKind(tiles[off])
			grid.Map[y][x].Visibility = domain.Visibility(tiles[off+1])
			grid.Map[y][x].Corpse = tiles[off+2]&tileFlagCorpse != 0
		}
	}
	snap.Grid = grid

	// 3. Сущности
	snap.Entities = make([]*domain.Entity, 0, header.EntityCount)
	for i := 0; i < int(header.EntityCount); i++ {
		var blobLen uint32
		if err := binary.Read(r, binary.LittleEndian, &blobLen); err != nil {
			return nil, err
		}
		blob := make([]byte, blobLen)
		if _, err := io.ReadFull(r, blob); err != nil {
			return nil, err
		}

		e := &domain.Entity{}
		if err := json.Unmarshal(blob, e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity %d: %w", i, err)
		}
		relinkEquipment(e)
		snap.Entities = append(snap.Entities, e)
	}

	return snap, nil
}

// relinkEquipment восстанавливает ссылочную целостность: после
// Unmarshal слоты экипировки указывают на КОПИИ предметов инвентаря,
// а движок опирается на тождество указателей.
func relinkEquipment(e *domain.Entity) {
	if e.Equipment == nil || e.Inventory == nil {
		return
	}
	if e.Equipment.Weapon != nil {
		e.Equipment.Weapon = e.Inventory.FindItem(e.Equipment.Weapon.ID)
	}
	if e.Equipment.Armor != nil {
		e.Equipment.Armor = e.Inventory.FindItem(e.Equipment.Armor.ID)
	}
}
