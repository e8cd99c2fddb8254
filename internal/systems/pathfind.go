package systems

import (
	"tombs-server/internal/domain"
)

// Порядок обхода соседей фиксирован, чтобы поиск пути был
// детерминированным при равной длине маршрутов. Прямые шаги идут
// раньше диагоналей: при равной дистанции монстр ходит по прямой.
var neighborSteps = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// NextStepTowards ищет кратчайший путь (BFS, 8 направлений) от from до to
// и возвращает первый шаг (dx, dy). Стены - жёсткие препятствия; живые
// сущности - мягкие: сквозь них путь не строится, но сам тайл цели
// проходимым считается (иначе монстр никогда не подошёл бы к герою).
// Если пути нет, возвращает (0, 0).
//
// BFS идёт от цели наружу и строит карту дистанций; первый шаг - сосед
// from с минимальной дистанцией до цели. При равных дистанциях побеждает
// первый по порядку neighborSteps.
func NextStepTowards(g *domain.Grid, from, to domain.Position) (int, int) {
	if from == to {
		return 0, 0
	}

	start := g.GetIndex(from.X, from.Y)
	goal := g.GetIndex(to.X, to.Y)

	dist := map[int]int{goal: 0}
	queue := []int{goal}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == start {
			break
		}

		cx, cy := cur%g.Width, cur/g.Width
		for _, step := range neighborSteps {
			nx, ny := cx+step[0], cy+step[1]
			if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
				continue
			}
			if !g.Map[ny][nx].Walkable() {
				continue
			}
			next := g.GetIndex(nx, ny)
			if _, seen := dist[next]; seen {
				continue
			}
			// Занятые живыми телами тайлы обходим; стартовый тайл -
			// это сам ходок, он препятствием не считается.
			if next != start {
				if blocker := g.BlockingEntityAt(domain.Position{X: nx, Y: ny}); blocker != nil {
					continue
				}
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}

	bestDx, bestDy := 0, 0
	bestDist := -1
	for _, step := range neighborSteps {
		nx, ny := from.X+step[0], from.Y+step[1]
		if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
			continue
		}
		next := g.GetIndex(nx, ny)
		d, ok := dist[next]
		if !ok {
			continue
		}
		// На тайл цели шагнуть можно даже сквозь тело: вызывающий код
		// превратит такой шаг в атаку.
		if next != goal {
			if blocker := g.BlockingEntityAt(domain.Position{X: nx, Y: ny}); blocker != nil {
				continue
			}
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			bestDx, bestDy = step[0], step[1]
		}
	}

	return bestDx, bestDy
}
