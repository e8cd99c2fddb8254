package actions

import (
	"fmt"

	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
)

// Справочные команды: не мутируют мир и не тратят ход, их можно слать
// сколько угодно раз подряд с одинаковым результатом.

// HandleCharacter возвращает лист персонажа героя.
func HandleCharacter(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.Actor.Stats
	msgs := []string{
		"--- Лист персонажа ---",
		fmt.Sprintf("Уровень: %d (опыт %d / %d)", st.Level, st.XP, st.XPToNextLevel()),
		fmt.Sprintf("Здоровье: %d / %d", st.HP, st.MaxHP),
		fmt.Sprintf("Атака: %d", systems.EffectivePower(ctx.Actor)),
		fmt.Sprintf("Защита: %d", systems.EffectiveDefense(ctx.Actor)),
	}
	return handlers.Result{Messages: msgs, MsgType: "INFO"}, nil
}

// HandleInventory возвращает содержимое рюкзака.
func HandleInventory(ctx handlers.Context) (handlers.Result, error) {
	inv := ctx.Actor.Inventory
	msgs := []string{fmt.Sprintf("--- Инвентарь (%d/%d) ---", len(inv.Items), inv.MaxSlots)}
	if len(inv.Items) == 0 {
		msgs = append(msgs, "Рюкзак пуст.")
	}
	for _, item := range inv.Items {
		line := item.Name
		if ctx.Actor.Equipment != nil {
			if ctx.Actor.Equipment.Weapon == item {
				line += " (в руке)"
			}
			if ctx.Actor.Equipment.Armor == item {
				line += " (надето)"
			}
		}
		msgs = append(msgs, line)
	}
	return handlers.Result{Messages: msgs, MsgType: "INFO"}, nil
}
