package domain

// AIComponent - Мозги и Поведение монстра.
// Конечный автомат: Idle -> Chasing -> Attacking (см. systems/ai.go).
type AIComponent struct {
	State AIState `json:"state"`

	// LastKnown — последняя известная позиция игрока. Валидна только
	// в состоянии Chasing: монстр идёт туда, даже потеряв игрока из виду.
	LastKnown    Position `json:"lastKnown"`
	HasLastKnown bool     `json:"hasLastKnown"`
}

// SpotPlayer переводит монстра в погоню и запоминает, где видели игрока.
func (a *AIComponent) SpotPlayer(pos Position) {
	a.State = AIStateChasing
	a.LastKnown = pos
	a.HasLastKnown = true
}

// LoseTrail сбрасывает погоню: след взят, игрока нет.
func (a *AIComponent) LoseTrail() {
	a.State = AIStateIdle
	a.HasLastKnown = false
}

// EngageMelee — игрок в соседней клетке, переходим к атаке.
func (a *AIComponent) EngageMelee(pos Position) {
	a.State = AIStateAttacking
	a.LastKnown = pos
	a.HasLastKnown = true
}
