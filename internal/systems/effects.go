package systems

import (
	"fmt"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UseRequest - разобранная команда USE: какой предмет и куда целиться.
type UseRequest struct {
	ItemID    types.EntityID
	TargetID  types.EntityID   // цель для Confusion
	TargetPos *domain.Position // тайл для Fireball
	Cancelled bool             // игрок отменил выбор цели
}

// UseResult - исход применения предмета.
type UseResult struct {
	Consumed bool
	XPGained int
	LevelsUp int
	Messages []string
}

// UseItem применяет предмет из инвентаря героя. Предмет ТРАТИТСЯ только
// при успешном эффекте: любая доменная ошибка (нет цели, отмена, полное
// здоровье) оставляет предмет в рюкзаке и не тратит ход.
// visible - актуальная FOV-мапа героя, все проверки дальности свитков
// считаются от неё.
func UseItem(actor *domain.Entity, req UseRequest, g *domain.Grid, visible map[int]bool) (UseResult, error) {
	res := UseResult{}

	if req.Cancelled {
		return res, fmt.Errorf("выбор цели отменен: %w", domain.ErrTargetingCancelled)
	}

	if actor.Inventory == nil {
		return res, fmt.Errorf("нет инвентаря")
	}
	item := actor.Inventory.FindItem(req.ItemID)
	if item == nil || item.Item == nil {
		return res, fmt.Errorf("предмет %s не найден: %w", req.ItemID, domain.ErrNoSuchItem)
	}

	effectLogger := logger.Log.WithFields(logrus.Fields{
		"component": "effect_system",
		"actor_id":  actor.ID,
		"item_id":   item.ID,
		"item_name": item.Name,
		"item_kind": item.Item.Kind.String(),
	})

	switch item.Item.Kind {
	case domain.ItemPotion:
		if actor.Stats == nil || actor.Stats.HP >= actor.Stats.MaxHP {
			return res, fmt.Errorf("здоровье уже полное: %w", domain.ErrNoEligibleTarget)
		}
		healed := actor.Stats.Heal(item.Item.HealAmount)
		effectLogger.WithField("healed", healed).Info("Potion consumed.")
		res.Consumed = true
		res.Messages = append(res.Messages,
			fmt.Sprintf("Раны затягиваются! %s восстанавливает %d HP.", actor.Name, healed))

	case domain.ItemScroll:
		msgs, xp, err := castScroll(actor, item, req, g, visible)
		if err != nil {
			return res, err
		}
		res.Consumed = true
		res.Messages = append(res.Messages, msgs...)
		if xp > 0 && actor.Stats != nil {
			res.XPGained = xp
			res.LevelsUp = actor.Stats.AddXP(xp)
			res.Messages = append(res.Messages, fmt.Sprintf("Вы получаете %d опыта.", xp))
			for i := 0; i < res.LevelsUp; i++ {
				res.Messages = append(res.Messages,
					fmt.Sprintf("Ваши боевые навыки растут! Вы достигли уровня %d!", actor.Stats.Level))
			}
		}

	case domain.ItemWeapon, domain.ItemArmor:
		msg, err := TryEquip(actor, item)
		if err != nil {
			return res, err
		}
		// Экипировка не расходуется и не покидает инвентарь.
		res.Messages = append(res.Messages, msg)

	default:
		return res, fmt.Errorf("предмет %s нельзя использовать", item.Name)
	}

	if res.Consumed {
		actor.Inventory.RemoveItem(item.ID)
	}
	return res, nil
}

// castScroll применяет эффект свитка. Возвращает сообщения и суммарный
// XP за убитых монстров. Ошибка означает, что свиток НЕ потрачен.
func castScroll(actor, item *domain.Entity, req UseRequest, g *domain.Grid, visible map[int]bool) ([]string, int, error) {
	switch item.Item.Scroll {
	case domain.ScrollLightning:
		target := FindClosestMonster(g, actor, visible, domain.LightningRange)
		if target == nil {
			return nil, 0, fmt.Errorf("рядом нет врага для удара молнии: %w", domain.ErrNoEligibleTarget)
		}
		// Молния бьёт в обход защиты.
		died := target.Stats.TakeDamage(domain.LightningDamage)
		msgs := []string{fmt.Sprintf(
			"Молния с оглушительным треском бьет в %s! Урон: %d.",
			target.Name, domain.LightningDamage)}
		xp := 0
		if died {
			xp = target.Stats.XP
			msgs = append(msgs, KillEntity(g, target)...)
		}
		return msgs, xp, nil

	case domain.ScrollConfusion:
		if req.TargetID.IsNil() {
			return nil, 0, fmt.Errorf("свиток замешательства требует цель: %w", domain.ErrNoEligibleTarget)
		}
		target := g.GetEntity(req.TargetID)
		if target == nil || !target.IsMonster() || !target.Alive() {
			return nil, 0, fmt.Errorf("цель недоступна: %w", domain.ErrNoEligibleTarget)
		}
		if !visible[g.GetIndex(target.Pos.X, target.Pos.Y)] ||
			actor.Pos.DistanceTo(target.Pos) > float64(domain.ConfuseRange) {
			return nil, 0, fmt.Errorf("цель вне зоны видимости: %w", domain.ErrNoEligibleTarget)
		}
		// Повторное наложение не суммируется: счётчик сбрасывается заново.
		target.ApplyStatus(domain.StatusConfused, domain.ConfuseDuration)
		if target.AI != nil {
			target.AI.SpotPlayer(actor.Pos)
		}
		return []string{fmt.Sprintf(
			"Глаза %s стекленеют, он начинает бродить кругами!", target.Name)}, 0, nil

	case domain.ScrollFireball:
		if req.TargetPos == nil {
			return nil, 0, fmt.Errorf("огненный шар требует точку на карте: %w", domain.ErrNoEligibleTarget)
		}
		pos := *req.TargetPos
		if !g.InBounds(pos.X, pos.Y) {
			return nil, 0, fmt.Errorf("точка вне карты: %w", domain.ErrOutOfBounds)
		}
		if !visible[g.GetIndex(pos.X, pos.Y)] {
			return nil, 0, fmt.Errorf("нельзя целиться в невидимый тайл: %w", domain.ErrNoEligibleTarget)
		}

		msgs := []string{fmt.Sprintf(
			"Огненный шар взрывается, сжигая все в радиусе %d тайлов!", domain.FireballRadius)}
		xp := 0
		// Взрыв не различает своих и чужих: герой в радиусе тоже горит.
		for _, e := range EntitiesInRadius(g, pos, domain.FireballRadius) {
			if e.Stats == nil {
				continue
			}
			died := e.Stats.TakeDamage(domain.FireballDamage)
			msgs = append(msgs, fmt.Sprintf(
				"%s получает %d ожогов.", e.Name, domain.FireballDamage))
			if died {
				msgs = append(msgs, KillEntity(g, e)...)
				if e.IsMonster() {
					xp += e.Stats.XP
				}
			}
		}
		return msgs, xp, nil
	}

	return nil, 0, fmt.Errorf("неизвестный свиток")
}
