package api

import "fmt"

// Validator реализуется всеми payload-структурами, которые требуют
// проверки до исполнения. Обработчики вызывают Validate() сразу после
// разбора JSON; ошибка валидации не тратит ход.
type Validator interface {
	Validate() error
}

// Validate проверяет, что направление является одним из 8 допустимых шагов.
func (p *DirectionPayload) Validate() error {
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return fmt.Errorf("direction out of range: dx=%d dy=%d", p.Dx, p.Dy)
	}
	if p.Dx == 0 && p.Dy == 0 {
		return fmt.Errorf("zero direction is not a move, use WAIT")
	}
	return nil
}

// Validate проверяет, что payload предмета согласован.
func (p *ItemPayload) Validate() error {
	if p.Cancelled {
		// Отменённая команда валидна всегда, даже без itemId.
		return nil
	}
	if p.ItemID == "" {
		return fmt.Errorf("itemId is required")
	}
	if p.TargetID != "" && p.Target != nil {
		return fmt.Errorf("targetId and target are mutually exclusive")
	}
	return nil
}

// Validate для позиции проверяется в обработчике относительно карты,
// здесь только базовая проверка на отрицательные координаты.
func (p *PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("negative coordinates: x=%d y=%d", p.X, p.Y)
	}
	return nil
}
