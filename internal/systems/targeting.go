package systems

import (
	"sort"

	"tombs-server/internal/domain"
)

// FindClosestMonster ищет ближайшего к caster живого монстра в пределах
// maxRange, видимого в переданной FOV-мапе. При равной дистанции
// побеждает меньший ID - выбор детерминирован.
func FindClosestMonster(g *domain.Grid, caster *domain.Entity, visible map[int]bool, maxRange int) *domain.Entity {
	var best *domain.Entity
	bestDist := float64(maxRange) + 1e-9

	for _, e := range g.EntityRegistry {
		if !e.IsMonster() || !e.Alive() {
			continue
		}
		if !visible[g.GetIndex(e.Pos.X, e.Pos.Y)] {
			continue
		}
		dist := caster.Pos.DistanceTo(e.Pos)
		if dist > float64(maxRange) {
			continue
		}
		if best == nil || dist < bestDist || (dist == bestDist && e.ID < best.ID) {
			best = e
			bestDist = dist
		}
	}
	return best
}

// EntitiesInRadius возвращает все живые сущности (включая героя) в
// евклидовом радиусе от центра, отсортированные по ID, чтобы порядок
// сообщений об уроне не зависел от обхода мапы.
func EntitiesInRadius(g *domain.Grid, center domain.Position, radius int) []*domain.Entity {
	var result []*domain.Entity
	for _, e := range g.EntityRegistry {
		if !e.Alive() {
			continue
		}
		if e.Pos.DistanceTo(center) <= float64(radius) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
