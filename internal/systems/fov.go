package systems

import (
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает мапу индексов {index: true}, которые видны
// из точки pos в радиусе radius (евклидова метрика). Алгоритм -
// рекурсивный shadowcasting, он симметричен: A видит B <=> B видит A
// при равном радиусе.
func ComputeVisibleTiles(g *domain.Grid, pos domain.Position, radius int) map[int]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": pos,
	})

	visibleMap := make(map[int]bool)
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visibleMap // Слепой
	}

	// Центр всегда виден, даже если наблюдатель стоит в стене.
	visibleMap[g.GetIndex(pos.X, pos.Y)] = true

	// Запускаем рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(g, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	fovLogger.WithField("visible_tiles", len(visibleMap)).Debug("FOV calculation complete.")

	return visibleMap
}

func castLight(g *domain.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			// Проверка границ и радиуса
			if X >= 0 && Y >= 0 && X < g.Width && Y < g.Height {
				if float64(dx*dx+dy*dy) < radiusSq {
					idx := g.GetIndex(X, Y)
					visibleMap[idx] = true
				}
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if isOpaque(g, X, Y) {
					newStart = rSlope
					continue
				} else {
					// Стена кончилась, началась пустота
					blocked = false
					start = newStart
				}
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if isOpaque(g, X, Y) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isOpaque проверяет, блокирует ли клетка взгляд
func isOpaque(g *domain.Grid, x, y int) bool {
	// Выход за границы считается блокирующим
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return true
	}
	// Видимость блокируют только стены. Сущности (включая монстров)
	// прозрачны: тушка орка не отбрасывает тень.
	return !g.Map[y][x].Transparent()
}

// ApplyVisibility переводит тайлы карты в новое состояние видимости по
// свежей FOV-мапе героя: видимые помечаются VisibilityVisible, ранее
// видимые, но выпавшие из поля зрения - VisibilityRemembered.
// Неисследованные тайлы остаются VisibilityUnseen.
func ApplyVisibility(g *domain.Grid, visible map[int]bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.GetIndex(x, y)
			tile := &g.Map[y][x]
			if visible[idx] {
				tile.Visibility = domain.VisibilityVisible
			} else if tile.Visibility == domain.VisibilityVisible {
				tile.Visibility = domain.VisibilityRemembered
			}
		}
	}
}

// CanSee проверяет, видит ли наблюдатель в точке from точку to в заданном
// радиусе. Используется ИИ монстров: та же FOV-функция, что и у героя,
// поэтому зрение симметрично.
func CanSee(g *domain.Grid, from, to domain.Position, radius int) bool {
	if from.DistanceSquaredTo(to) > radius*radius {
		return false
	}
	visible := ComputeVisibleTiles(g, from, radius)
	return visible[g.GetIndex(to.X, to.Y)]
}
