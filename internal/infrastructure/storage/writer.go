package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"tombs-server/internal/domain"
)

const (
	MagicHeader string = `TOMB` // 4 байта

	// Version2 добавила байт флагов тайла (отметка трупа).
	Version2 uint32 = 2

	tileFlagCorpse uint8 = 1 << 0
)

// SaveFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type SaveFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	Depth       int32   // 4 байта
	Turn        int32   // 4 байта
	Width       int32   // 4 байта
	Height      int32   // 4 байта
	EntityCount int32   // 4 байта
	GameOver    uint8   // 1 байт
}

// Snapshot — полное состояние симуляции на момент сохранения.
// Карта сохраняется потайлово (вид + туман войны), сущности — как
// JSON-блобы: их структура меняется чаще, чем формат файла.
type Snapshot struct {
	Seed     int64
	Depth    int
	Turn     int
	GameOver bool

	Grid     *domain.Grid
	Entities []*domain.Entity
}

type SnapshotService struct {
	SaveDir string
}

func NewSnapshotService(dir string) *SnapshotService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &SnapshotService{SaveDir: dir}
}

// Save пишет снимок в новый файл и возвращает его путь.
func (s *SnapshotService) Save(snap *Snapshot) (string, error) {
	filename := fmt.Sprintf("save_%d_d%d_%d.tomb", snap.Seed, snap.Depth, time.Now().Unix())
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, snap); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, snap *Snapshot) error {
	// 1. ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := SaveFileHeader{
		Version:     Version2,
		Seed:        snap.Seed,
		Timestamp:   time.Now().Unix(),
		Depth:       int32(snap.Depth),
		Turn:        int32(snap.Turn),
		Width:       int32(snap.Grid.Width),
		Height:      int32(snap.Grid.Height),
		EntityCount: int32(len(snap.Entities)),
	}
	copy(header.Magic[:], MagicHeader)
	if snap.GameOver {
		header.GameOver = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. КАРТА: по 3 байта на тайл (вид + видимость + флаги)
	tiles := make([]byte, 0, snap.Grid.Width*snap.Grid.Height*3)
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			tile := snap.Grid.Map[y][x]
			var flags uint8
			if tile.Corpse {
				flags |= tileFlagCorpse
			}
			tiles = append(tiles, uint8(tile.Kind), uint8(tile.Visibility), flags)
		}
	}
	if _, err := w.Write(tiles); err != nil {
		return fmt.Errorf("failed to write tiles: %w", err)
	}

	// 3. СУЩНОСТИ: length-prefixed JSON
	for _, e := range snap.Entities {
		blob, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entity %s: %w", e.ID, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(blob))); err != nil {
			return err
		}
		if _, err := w.Write(blob); err != nil {
			return err
		}
	}

	return nil
}
