package systems

import (
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Использует оптимизированный алгоритм Брезенхэма (только целочисленная
// арифметика). ВНИМАНИЕ: это НЕ поле зрения. Для FOV используется
// симметричный shadowcasting (fov.go); Брезенхэм допустим только как
// вспомогательная проверка (валидация ближней атаки, трассировка линии).
func HasLineOfSight(g *domain.Grid, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1.X == p2.X && p1.Y == p2.Y {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == x1 && y0 == y1

		if !isStartPoint && !isEndPoint {
			// 1. Проверка границ карты
			if x0 < 0 || x0 >= g.Width || y0 < 0 || y0 >= g.Height {
				losLogger.WithField("blocking_point", map[string]int{"x": x0, "y": y0}).
					Debug("Line of sight blocked by map bounds.")
				return false
			}
			// 2. Проверка стены
			if !g.Map[y0][x0].Transparent() {
				losLogger.WithField("blocking_point", map[string]int{"x": x0, "y": y0}).
					Debug("Line of sight blocked by wall.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
