package actions

import (
	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/systems"
	"tombs-server/pkg/api"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает команду USE: зелья, свитки и экипировка.
// Предмет расходуется только при успехе; отмена выбора цели и
// отсутствие подходящей цели сохраняют и предмет, и ход.
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	req := systems.UseRequest{Cancelled: p.Cancelled}

	if !p.Cancelled {
		itemID, err := types.ParseEntityID(p.ItemID)
		if err != nil {
			return handlers.EmptyResult(), err
		}
		req.ItemID = itemID

		if p.TargetID != "" {
			targetID, err := types.ParseEntityID(p.TargetID)
			if err != nil {
				return handlers.EmptyResult(), err
			}
			req.TargetID = targetID
		}
		if p.Target != nil {
			req.TargetPos = &domain.Position{X: p.Target.X, Y: p.Target.Y}
		}
	}

	res, err := systems.UseItem(ctx.Actor, req, ctx.Grid, ctx.Visible)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "use_handler",
		"actor_id":  ctx.Actor.ID,
		"item_id":   p.ItemID,
		"consumed":  res.Consumed,
	}).Info("Item used successfully")

	return handlers.Result{
		Messages:  res.Messages,
		MsgType:   "INFO",
		TurnSpent: true,
	}, nil
}
