package domain

import "strings"

// EventType - Внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventLevelTransition
	EventGameOver
)

var eventStringToCmd = map[string]EventType{
	"LEVEL_TRANSITION": EventLevelTransition,
	"GAME_OVER":        EventGameOver,
}

var eventCmdToString = map[EventType]string{
	EventLevelTransition: "LEVEL_TRANSITION",
	EventGameOver:        "GAME_OVER",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToCmd[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
