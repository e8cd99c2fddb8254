package admin

import (
	"fmt"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
)

// Админские команды доступны только через debug-эндпоинт HTTP-сервера.
// Они мутируют мир в обход контракта ходов и в бою не участвуют.

// TeleportPayload: { "x": 10, "y": 10 }
type TeleportPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func HandleTeleport(ctx handlers.Context, p TeleportPayload) (handlers.Result, error) {
	if err := ctx.Grid.MoveEntity(ctx.Actor, domain.Position{X: p.X, Y: p.Y}); err != nil {
		return handlers.Result{Messages: []string{fmt.Sprintf("Teleport failed: %v", err)}, MsgType: "ERROR"}, nil
	}
	return handlers.Result{Messages: []string{"Teleported via admin magic"}, MsgType: "INFO"}, nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Stats != nil {
		ctx.Actor.Stats.HP = ctx.Actor.Stats.MaxHP
		ctx.Actor.Stats.IsDead = false
	}
	return handlers.Result{Messages: []string{"Fully healed"}, MsgType: "INFO"}, nil
}

// RevealMap открывает всю карту как "запомненную".
func HandleRevealMap(ctx handlers.Context) (handlers.Result, error) {
	for y := 0; y < ctx.Grid.Height; y++ {
		for x := 0; x < ctx.Grid.Width; x++ {
			if ctx.Grid.Map[y][x].Visibility == domain.VisibilityUnseen {
				ctx.Grid.Map[y][x].Visibility = domain.VisibilityRemembered
			}
		}
	}
	return handlers.Result{Messages: []string{"Map revealed"}, MsgType: "INFO"}, nil
}

type KillPayload struct {
	TargetID string `json:"targetId"`
}

func HandleKill(ctx handlers.Context, p KillPayload) (handlers.Result, error) {
	id, err := types.ParseEntityID(p.TargetID)
	if err != nil {
		return handlers.Result{Messages: []string{"Bad target id"}, MsgType: "ERROR"}, nil
	}
	target := ctx.Grid.GetEntity(id)
	if target == nil || target.Stats == nil {
		return handlers.Result{Messages: []string{"Target not found"}, MsgType: "ERROR"}, nil
	}
	target.Stats.TakeDamage(9999)
	msgs := append([]string{fmt.Sprintf("Smited %s", target.Name)}, systems.KillEntity(ctx.Grid, target)...)
	return handlers.Result{Messages: msgs, MsgType: "COMBAT"}, nil
}
