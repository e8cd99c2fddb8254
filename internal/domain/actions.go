package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionWait
	ActionPickup
	ActionDrop
	ActionUse
	ActionDescend
	ActionCharacter
	ActionInventory

	// ActionAttack - внутреннее действие ИИ, клиентом не отправляется:
	// атака героя для клиента выражается через MOVE в занятую клетку.
	ActionAttack
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":      ActionInit,
	"MOVE":      ActionMove,
	"WAIT":      ActionWait,
	"PICKUP":    ActionPickup,
	"DROP":      ActionDrop,
	"USE":       ActionUse,
	"DESCEND":   ActionDescend,
	"CHARACTER": ActionCharacter,
	"INVENTORY": ActionInventory,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:      "INIT",
	ActionMove:      "MOVE",
	ActionWait:      "WAIT",
	ActionPickup:    "PICKUP",
	ActionDrop:      "DROP",
	ActionUse:       "USE",
	ActionDescend:   "DESCEND",
	ActionCharacter: "CHARACTER",
	ActionInventory: "INVENTORY",
	ActionAttack:    "ATTACK",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsReadOnly сообщает, что действие никогда не мутирует состояние
// и не тратит ход (справка о персонаже, список инвентаря).
func (a ActionType) IsReadOnly() bool {
	return a == ActionCharacter || a == ActionInventory || a == ActionInit
}
