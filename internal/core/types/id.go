package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный упакованный идентификатор сущности.
//
// EntityID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения. Все перекрёстные ссылки в симуляции
// (цель свитка, последняя известная позиция игрока и т.д.) хранятся
// как EntityID и разыменовываются через реестр уровня — никаких
// прямых указателей между сущностями.
//
// Формат битов (от старших к младшим):
//
//	[ Type (8) | Depth (16) | Index (40) ]
//
// Где:
//   - Type — тип сущности (Player, Monster, Item, Stairs)
//   - Depth — глубина уровня, на котором сущность была создана
//   - Index — порядковый номер спавна, монотонно растёт
//
// Index задаёт и детерминированный порядок обхода в планировщике ходов:
// кто раньше заспавнился, тот раньше ходит.
type EntityID uint64

// NilEntityID — нулевой идентификатор, аналог nil-ссылки.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	bitsIndex = 40
	bitsDepth = 16
	bitsType  = 8

	shiftDepth = bitsIndex
	shiftType  = bitsIndex + bitsDepth

	maskIndex = (uint64(1) << bitsIndex) - 1
	maskDepth = (uint64(1) << bitsDepth) - 1
	maskType  = (uint64(1) << bitsType) - 1
)

// PackEntityID собирает ID из компонентов.
func PackEntityID(typeID uint8, depth uint16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(depth) & maskDepth) << shiftDepth
	id |= (uint64(typeID) & maskType) << shiftType
	return EntityID(id)
}

// Type возвращает тип сущности (старшие 8 бит).
func (id EntityID) Type() uint8 {
	return uint8((uint64(id) >> shiftType) & maskType)
}

// Depth возвращает глубину, на которой сущность создана.
func (id EntityID) Depth() uint16 {
	return uint16((uint64(id) >> shiftDepth) & maskDepth)
}

// Index возвращает порядковый номер спавна.
func (id EntityID) Index() uint64 {
	return uint64(id) & maskIndex
}

// IsNil сообщает, что ссылка пустая.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// MarshalJSON сериализует ID в строку: JS теряет точность на больших uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

// ParseEntityID парсит десятичное строковое представление ID
// (в этом виде ID ходят по wire-протоколу).
func ParseEntityID(s string) (EntityID, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("bad entity id %q: %w", s, err)
	}
	return EntityID(val), nil
}

// Wire возвращает представление ID для wire-протокола.
func (id EntityID) Wire() string {
	return strconv.FormatUint(uint64(id), 10)
}

// String для логов: [Type:Depth:Index].
func (id EntityID) String() string {
	return fmt.Sprintf("[%d:%d:%d]", id.Type(), id.Depth(), id.Index())
}
