package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира, видимого для конкретного
// клиента. Отправляется после каждого разрешённого хода.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE", "INFO", "GAME_OVER".
	Type string `json:"type"`

	// Turn текущий номер хода. Увеличивается после каждого полного
	// круга (игрок + все монстры).
	Turn int `json:"turn"`

	// Depth текущая глубина подземелья.
	Depth int `json:"depth"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или запомненных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Player стат-блок героя (только своему клиенту).
	Player *StatsView `json:"player,omitempty"`

	// Inventory содержимое рюкзака героя.
	Inventory *InventoryView `json:"inventory,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO (Data Transfer Object) для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// Kind вид тайла: "WALL", "FLOOR", "STAIRS_DOWN".
	Kind string `json:"kind"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден ("туман войны").
	// Если IsVisible=false, а IsExplored=true, рендерится тускло,
	// сущности на таком тайле не показываются.
	IsExplored bool `json:"isExplored"`

	// HasCorpse true, если на тайле кто-то погиб. Декоративная отметка,
	// на проходимость не влияет.
	HasCorpse bool `json:"hasCorpse,omitempty"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, MONSTER, ITEM, STAIRS
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats может отсутствовать (omitempty), если клиент не имеет
	// права видеть статы этой сущности.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power,omitempty"`
	Defense int  `json:"defense,omitempty"`
	XP      int  `json:"xp,omitempty"`
	Level   int  `json:"level,omitempty"`
	IsDead  bool `json:"isDead"`

	// Statuses активные статусы: имя -> оставшиеся ходы.
	Statuses map[string]int `json:"statuses,omitempty"`
}

// ItemView представляет предмет для клиента.
type ItemView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Color        string `json:"color"`
	Kind         string `json:"kind"`
	Scroll       string `json:"scroll,omitempty"`
	HealAmount   int    `json:"healAmount,omitempty"`
	AttackBonus  int    `json:"attackBonus,omitempty"`
	DefenseBonus int    `json:"defenseBonus,omitempty"`
	Equipped     bool   `json:"equipped,omitempty"`
}

// InventoryView представляет инвентарь для клиента.
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
// 8 направлений; (0,0) для MOVE недопустимо (для паузы есть WAIT).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload используется для действий, нацеленных на точку на карте.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload используется для действий с предметами (PICKUP, DROP, USE).
//
// Для USE свитков клиент дополняет команду выбором цели:
//   - TargetID — для Confusion (конкретный видимый монстр)
//   - Target   — для Fireball (тайл)
//   - Cancelled=true — игрок отменил выбор цели; вся команда становится
//     идемпотентным no-op, свиток не тратится.
type ItemPayload struct {
	ItemID    string           `json:"itemId"`
	TargetID  string           `json:"targetId,omitempty"`
	Target    *PositionPayload `json:"target,omitempty"`
	Cancelled bool             `json:"cancelled,omitempty"`
}
