package engine

import (
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// processEvent - точка входа для событий, возвращенных хендлерами.
func (s *GameService) processEvent(event domain.EventType) {
	switch event {
	case domain.EventLevelTransition:
		s.advanceLevel()
	case domain.EventGameOver:
		logger.Log.WithField("depth", s.Current.Depth).Info("Game over")
	}
}

// advanceLevel спускает героя на следующую глубину.
// Старый уровень выбрасывается целиком: монстры, предметы на полу и
// туман войны не переживают спуск. Герой сохраняет инвентарь, статы и
// получает передышку - лечение на половину максимума здоровья.
func (s *GameService) advanceLevel() {
	oldDepth := s.Current.Depth
	newDepth := oldDepth + 1

	// Сид уровня выводится из мастер-сида: перезапуск с тем же сидом
	// воспроизводит всё подземелье, сколько бы раз герой ни спускался.
	inst, err := NewInstance(newDepth, s.Config.Seed+int64(newDepth), s)
	if err != nil {
		// Уровень не сгенерировался - фатальная ситуация, но старый
		// уровень ещё жив, герой остаётся на нём.
		logger.Log.WithError(err).WithField("depth", newDepth).Error("Level generation failed, staying put")
		s.Current.AddLog("Лестница обрушивается! Спуск невозможен.", "ERROR")
		return
	}

	// Переносим накопленный ход и непрочитанные логи.
	inst.Turn = s.Current.Turn
	inst.Logs = append(inst.Logs, s.Current.Logs...)

	// Выписываем героя из старого мира.
	s.Current.Grid.RemoveEntity(s.Player)
	s.Current.Grid.UnregisterEntity(s.Player.ID)

	s.Current = inst
	inst.AttachPlayer(s.Player)

	if s.Player.Stats != nil {
		healed := s.Player.Stats.Heal(s.Player.Stats.MaxHP / 2)
		if healed > 0 {
			inst.AddLog("Передышка на лестнице восстанавливает силы.", "INFO")
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"old_depth": oldDepth,
		"new_depth": newDepth,
	}).Info("Player descended")
}
