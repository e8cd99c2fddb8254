package systems

import (
	"tombs-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos      domain.Position
	HasMoved    bool
	BlockedBy   *domain.Entity // Если врезались в кого-то (для атаки)
	OutOfBounds bool
	IsWall      bool
}

// CalculateMove вычисляет новую позицию сущности при шаге (dx, dy).
// Не меняет состояние мира! Решение о том, что делать при столкновении
// (атака или ошибка), принимает вызывающий код.
func CalculateMove(e *domain.Entity, dx, dy int, g *domain.Grid) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewPos: targetPos}

	// 1. Проверка границ
	if !g.InBounds(targetPos.X, targetPos.Y) {
		res.OutOfBounds = true
		return res
	}

	// 2. Проверка стен
	if !g.Map[targetPos.Y][targetPos.X].Walkable() {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей.
	// Блокируют только живые тела; предметы, трупы и лестницы проходимы.
	if blocker := g.BlockingEntityAt(targetPos); blocker != nil && blocker.ID != e.ID {
		res.BlockedBy = blocker
		return res
	}

	res.HasMoved = true
	return res
}

// ExecuteMove применяет шаг к миру: пересчитывает позицию и, если путь
// свободен, перемещает сущность. Ошибки доменные и не тратят ход.
func ExecuteMove(e *domain.Entity, dx, dy int, g *domain.Grid) (MovementResult, error) {
	res := CalculateMove(e, dx, dy, g)
	switch {
	case res.OutOfBounds:
		return res, domain.ErrOutOfBounds
	case res.IsWall:
		return res, domain.ErrBlocked
	case res.BlockedBy != nil:
		// Не ошибка: вызывающий решает, атаковать ли.
		return res, nil
	}

	if err := g.MoveEntity(e, res.NewPos); err != nil {
		return res, err
	}
	return res, nil
}
