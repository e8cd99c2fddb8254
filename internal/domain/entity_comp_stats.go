package domain

// StatsComponent - Характеристики и Ресурсы
type StatsComponent struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power"`
	Defense int  `json:"defense"`
	XP      int  `json:"xp"`
	Level   int  `json:"level"`
	IsDead  bool `json:"isDead"`
}

// TakeDamage наносит урон БЕЗ учёта защиты (защиту считает боевая
// система или её игнорируют заклинания). Возвращает true, если цель
// погибла. HP никогда не уходит ниже нуля.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Heal лечит сущность. Возвращает фактически восстановленные HP.
func (s *StatsComponent) Heal(amount int) int {
	if s.IsDead {
		return 0 // Не лечим трупы! Нет некромантии!
	}
	before := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s.HP - before
}

// XPToNextLevel возвращает порог опыта для следующего уровня героя.
func (s *StatsComponent) XPToNextLevel() int {
	return LevelUpBase + s.Level*LevelUpFactor
}

// AddXP начисляет опыт и поднимает уровень, пока хватает порога.
// Возвращает количество полученных уровней.
func (s *StatsComponent) AddXP(amount int) int {
	if s.IsDead || amount <= 0 {
		return 0
	}
	s.XP += amount

	levels := 0
	for s.XP >= s.XPToNextLevel() {
		s.XP -= s.XPToNextLevel()
		s.Level++
		s.MaxHP += LevelUpHPGain
		s.HP += LevelUpHPGain
		levels++
	}
	return levels
}
