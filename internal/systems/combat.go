package systems

import (
	"fmt"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult описывает исход одной атаки ближнего боя.
type AttackResult struct {
	Damage     int
	TargetDied bool
	XPGained   int
	LevelsUp   int
	Messages   []string
}

// EffectivePower возвращает силу атаки сущности с учётом оружия.
func EffectivePower(e *domain.Entity) int {
	power := 0
	if e.Stats != nil {
		power = e.Stats.Power
	}
	if e.Equipment != nil {
		power += e.Equipment.AttackBonus()
	}
	return power
}

// EffectiveDefense возвращает защиту сущности с учётом брони.
func EffectiveDefense(e *domain.Entity) int {
	defense := 0
	if e.Stats != nil {
		defense = e.Stats.Defense
	}
	if e.Equipment != nil {
		defense += e.Equipment.DefenseBonus()
	}
	return defense
}

// ResolveAttack выполняет атаку ближнего боя attacker -> target.
// Урон = max(0, сила - защита); нулевой урон - отдельное сообщение
// "без эффекта", ход при этом всё равно потрачен.
// При смерти цели атакующий получает её XP.
func ResolveAttack(g *domain.Grid, attacker, target *domain.Entity) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	res := AttackResult{}

	// --- Проверка граничных условий ---

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		res.Messages = append(res.Messages,
			fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name))
		return res
	}
	if target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		res.Messages = append(res.Messages,
			fmt.Sprintf("%s пинает труп %s.", attacker.Name, target.Name))
		return res
	}

	// --- Расчёт урона ---

	damage := EffectivePower(attacker) - EffectiveDefense(target)
	if damage < 0 {
		damage = 0
	}
	res.Damage = damage

	if damage == 0 {
		combatLogger.Debug("Attack fully absorbed by defense.")
		res.Messages = append(res.Messages,
			fmt.Sprintf("%s атакует %s, но без эффекта!", attacker.Name, target.Name))
		return res
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)
	res.TargetDied = died

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	res.Messages = append(res.Messages,
		fmt.Sprintf("%s атакует %s и наносит %d урона.", attacker.Name, target.Name, damage))

	if died {
		res.Messages = append(res.Messages, KillEntity(g, target)...)
		if attacker.Stats != nil && target.Stats.XP > 0 && attacker.IsPlayer() {
			res.XPGained = target.Stats.XP
			res.LevelsUp = attacker.Stats.AddXP(target.Stats.XP)
			res.Messages = append(res.Messages,
				fmt.Sprintf("Вы получаете %d опыта.", target.Stats.XP))
			for i := 0; i < res.LevelsUp; i++ {
				res.Messages = append(res.Messages,
					fmt.Sprintf("Ваши боевые навыки растут! Вы достигли уровня %d!", attacker.Stats.Level))
			}
		}
	}

	return res
}

// KillEntity переводит сущность в состояние трупа: глиф '%', больше не
// блокирует проход, ИИ выключен. Труп остаётся на карте как декорация,
// а на тайле ставится отметка - она переживёт даже уход самой сущности.
func KillEntity(g *domain.Grid, target *domain.Entity) []string {
	if target.Stats != nil {
		target.Stats.IsDead = true
	}
	if g != nil {
		g.PlaceCorpse(target.Pos)
	}
	if target.Render != nil {
		target.Render.Glyph = domain.CorpseGlyph
	}
	target.AI = nil
	target.Statuses = nil

	name := target.Name
	target.Name = "останки " + name

	if target.IsPlayer() {
		return []string{"Вы погибли!"}
	}
	return []string{fmt.Sprintf("%s погибает!", name)}
}
