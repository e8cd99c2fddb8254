package domain

import "errors"

// Локальные, восстановимые ошибки симуляции. Действие, которое их
// вернуло, НЕ тратит ход: хендлер конвертирует ошибку в сообщение
// для клиента и ждёт следующую команду.
var (
	// ErrOutOfBounds — координата за пределами карты.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrBlocked — целевой тайл непроходим или занят живой сущностью.
	ErrBlocked = errors.New("blocked")

	// ErrInventoryFull — в рюкзаке нет места.
	ErrInventoryFull = errors.New("inventory full")

	// ErrNoSuchItem — предмет не найден в инвентаре.
	ErrNoSuchItem = errors.New("no such item")

	// ErrNoEligibleTarget — для свитка нет допустимой цели в радиусе.
	ErrNoEligibleTarget = errors.New("no eligible target")

	// ErrTargetingCancelled — внешний вызов отменил выбор цели.
	// Идемпотентный no-op: никаких побочных эффектов.
	ErrTargetingCancelled = errors.New("targeting cancelled")
)

// ErrLevelGeneration — фатальный отказ генератора: после всех ретраев
// не удалось построить уровень с достижимой лестницей.
var ErrLevelGeneration = errors.New("level generation failed")
