package domain

import "strings"

// EntityType — тип сущности. Числовой код попадает в старшие биты EntityID.
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeMonster
	EntityTypeItem
	EntityTypeStairs
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer:  "PLAYER",
	EntityTypeMonster: "MONSTER",
	EntityTypeItem:    "ITEM",
	EntityTypeStairs:  "STAIRS",
}

var entityTypeStringToType = map[string]EntityType{
	"PLAYER":  EntityTypePlayer,
	"MONSTER": EntityTypeMonster,
	"ITEM":    EntityTypeItem,
	"STAIRS":  EntityTypeStairs,
}

// String возвращает строковое представление (для логов и дебага).
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityType конвертирует строку в Enum (нужно для загрузки снапшотов).
func ParseEntityType(s string) EntityType {
	upper := strings.ToUpper(s)
	if val, ok := entityTypeStringToType[upper]; ok {
		return val
	}
	return EntityTypeUnknown
}

// TileKind — вид тайла карты.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairsDown
)

var tileKindToString = map[TileKind]string{
	TileWall:       "WALL",
	TileFloor:      "FLOOR",
	TileStairsDown: "STAIRS_DOWN",
}

func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Visibility — состояние видимости тайла для игрока.
// Unseen — никогда не видел; Remembered — видел раньше (туман войны,
// сущности на таком тайле не показываются); Visible — в текущем FOV.
type Visibility uint8

const (
	VisibilityUnseen Visibility = iota
	VisibilityRemembered
	VisibilityVisible
)

var visibilityToString = map[Visibility]string{
	VisibilityUnseen:     "UNSEEN",
	VisibilityRemembered: "REMEMBERED",
	VisibilityVisible:    "VISIBLE",
}

func (v Visibility) String() string {
	if val, ok := visibilityToString[v]; ok {
		return val
	}
	return "UNKNOWN"
}

// ItemKind — категория предмета.
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemPotion
	ItemWeapon
	ItemArmor
	ItemScroll
)

var itemKindToString = map[ItemKind]string{
	ItemPotion: "POTION",
	ItemWeapon: "WEAPON",
	ItemArmor:  "ARMOR",
	ItemScroll: "SCROLL",
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ScrollKind — вид свитка. Определяет правило таргетинга и разрешения
// эффекта (см. systems/effects.go).
type ScrollKind uint8

const (
	ScrollNone ScrollKind = iota
	ScrollConfusion
	ScrollLightning
	ScrollFireball
)

var scrollKindToString = map[ScrollKind]string{
	ScrollConfusion: "CONFUSION",
	ScrollLightning: "LIGHTNING",
	ScrollFireball:  "FIREBALL",
}

func (k ScrollKind) String() string {
	if val, ok := scrollKindToString[k]; ok {
		return val
	}
	return "NONE"
}

// StatusKind — вид таймированного статуса на сущности.
type StatusKind uint8

const (
	StatusConfused StatusKind = iota + 1
)

var statusKindToString = map[StatusKind]string{
	StatusConfused: "CONFUSED",
}

func (k StatusKind) String() string {
	if val, ok := statusKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// AIState — состояние конечного автомата монстра.
type AIState uint8

const (
	AIStateIdle AIState = iota
	AIStateChasing
	AIStateAttacking
)

var aiStateToString = map[AIState]string{
	AIStateIdle:      "IDLE",
	AIStateChasing:   "CHASING",
	AIStateAttacking: "ATTACKING",
}

func (s AIState) String() string {
	if val, ok := aiStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}
