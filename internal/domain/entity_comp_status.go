package domain

// StatusMap — таймированные статусы сущности: вид -> оставшиеся ходы.
type StatusMap map[StatusKind]int

// ApplyStatus вешает статус. Повторное наложение НЕ стакается:
// счётчик перезаписывается (Confusion 5 поверх Confusion 3 даёт 5, не 8).
func (e *Entity) ApplyStatus(kind StatusKind, turns int) {
	if e.Statuses == nil {
		e.Statuses = make(StatusMap)
	}
	e.Statuses[kind] = turns
}

// HasStatus проверяет активный статус.
func (e *Entity) HasStatus(kind StatusKind) bool {
	return e.Statuses[kind] > 0
}

// TickStatuses уменьшает счётчики на единицу. Вызывается ровно один
// раз за ход, в фиксированной точке собственного хода сущности.
// Возвращает список истёкших статусов.
func (e *Entity) TickStatuses() []StatusKind {
	if len(e.Statuses) == 0 {
		return nil
	}

	var expired []StatusKind
	for kind := range e.Statuses {
		e.Statuses[kind]--
		if e.Statuses[kind] <= 0 {
			delete(e.Statuses, kind)
			expired = append(expired, kind)
		}
	}
	return expired
}
