package systems

import (
	"testing"

	"tombs-server/internal/domain"
)

func TestComputeVisibleTiles_OpenRoom(t *testing.T) {
	g := newOpenGrid(21, 21)
	pos := domain.Position{X: 10, Y: 10}

	visible := ComputeVisibleTiles(g, pos, 5)

	if !visible[g.GetIndex(10, 10)] {
		t.Fatal("Origin tile must always be visible")
	}
	if !visible[g.GetIndex(10, 6)] {
		t.Error("Tile inside the radius must be visible in the open")
	}
	// Евклидова метрика: (14,14) на дистанции ~5.66 > 5
	if visible[g.GetIndex(14, 14)] {
		t.Error("Diagonal tile outside the euclidean radius must not be visible")
	}
}

func TestComputeVisibleTiles_WallOcclusion(t *testing.T) {
	g := newOpenGrid(21, 21)
	pos := domain.Position{X: 10, Y: 10}

	// Стена прямо справа от наблюдателя
	setWall(g, 12, 10)

	visible := ComputeVisibleTiles(g, pos, 8)

	if !visible[g.GetIndex(12, 10)] {
		t.Error("The wall itself must be visible")
	}
	if visible[g.GetIndex(14, 10)] {
		t.Error("Tile directly behind a wall must be shadowed")
	}
	if !visible[g.GetIndex(12, 6)] {
		t.Error("Tile away from the shadow cone must stay visible")
	}
}

func TestCanSee_Symmetry(t *testing.T) {
	g := newOpenGrid(21, 21)

	// Колонна между двумя точками
	setWall(g, 10, 10)

	cases := []struct {
		a, b domain.Position
	}{
		{domain.Position{X: 8, Y: 10}, domain.Position{X: 12, Y: 10}},
		{domain.Position{X: 5, Y: 5}, domain.Position{X: 15, Y: 15}},
		{domain.Position{X: 3, Y: 10}, domain.Position{X: 17, Y: 10}},
		{domain.Position{X: 9, Y: 9}, domain.Position{X: 11, Y: 11}},
	}

	for _, c := range cases {
		ab := CanSee(g, c.a, c.b, domain.VisionRadius)
		ba := CanSee(g, c.b, c.a, domain.VisionRadius)
		if ab != ba {
			t.Errorf("CanSee must be symmetric: %v->%v=%v, reverse=%v", c.a, c.b, ab, ba)
		}
	}
}

func TestCanSee_RadiusCutoff(t *testing.T) {
	g := newOpenGrid(40, 10)
	a := domain.Position{X: 2, Y: 5}
	b := domain.Position{X: 30, Y: 5}

	if CanSee(g, a, b, domain.VisionRadius) {
		t.Error("Target far beyond the vision radius must not be seen")
	}
	if !CanSee(g, a, domain.Position{X: 11, Y: 5}, domain.VisionRadius) {
		t.Error("Target within the radius in the open must be seen")
	}
}

func TestApplyVisibility_FogOfWar(t *testing.T) {
	g := newOpenGrid(21, 21)
	pos := domain.Position{X: 10, Y: 10}

	visible := ComputeVisibleTiles(g, pos, 5)
	ApplyVisibility(g, visible)

	if g.Map[10][10].Visibility != domain.VisibilityVisible {
		t.Error("Tiles in the FOV must be marked Visible")
	}
	if g.Map[0][0].Visibility != domain.VisibilityUnseen {
		t.Error("Never-seen tiles must stay Unseen")
	}

	// Герой уходит: старые тайлы темнеют до Remembered, не до Unseen
	newPos := domain.Position{X: 3, Y: 3}
	ApplyVisibility(g, ComputeVisibleTiles(g, newPos, 2))

	if g.Map[10][10].Visibility != domain.VisibilityRemembered {
		t.Errorf("Previously seen tile must become Remembered, got %v", g.Map[10][10].Visibility)
	}
}

func TestEntitiesDoNotBlockSight(t *testing.T) {
	g := newOpenGrid(21, 21)
	pos := domain.Position{X: 10, Y: 10}

	// Живой монстр на линии взгляда не отбрасывает тень
	orc := newTestMonster(1, 12, 10)
	g.AddEntity(orc)

	visible := ComputeVisibleTiles(g, pos, 8)
	if !visible[g.GetIndex(14, 10)] {
		t.Error("A creature must not cast shadows, only walls do")
	}
}
