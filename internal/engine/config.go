package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Сид уровня N = Seed + N, поэтому один мастер-сид
	// полностью детерминирует всё подземелье.
	Seed    int64
	ShardId uint8
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:    time.Now().UnixNano(),
		ShardId: 0,
	}
}
