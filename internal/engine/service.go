package engine

import (
	"fmt"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/engine/handlers"
	"tombs-server/internal/engine/handlers/actions"
	"tombs-server/internal/engine/handlers/admin"
	"tombs-server/internal/network"
	"tombs-server/pkg/api"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameService - владелец симуляции. Держит текущий уровень, героя и
// единственную горутину игрового цикла: все мутации мира происходят
// только в ней, поэтому движку не нужны мьютексы.
type GameService struct {
	Config Config

	// Current - единственный активный уровень.
	Current *Instance
	Player  *domain.Entity

	CommandChan chan domain.InternalCommand
	adminChan   chan adminRequest
	Hub         *network.Broadcaster

	actionHandlers map[domain.ActionType]handlers.HandlerFunc
	adminHandlers  map[string]handlers.HandlerFunc
}

// NewService создает сервис, генерирует первый уровень и героя.
func NewService(cfg Config) (*GameService, error) {
	s := &GameService{
		Config:         cfg,
		CommandChan:    make(chan domain.InternalCommand, 100),
		adminChan:      make(chan adminRequest),
		Hub:            network.NewBroadcaster(),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
		adminHandlers:  make(map[string]handlers.HandlerFunc),
	}
	s.registerHandlers()

	inst, err := NewInstance(1, cfg.Seed+1, s)
	if err != nil {
		return nil, err
	}

	s.Player = dungeon.CreatePlayer("hero_1", domain.Position{})
	s.Current = inst
	inst.AttachPlayer(s.Player)

	logger.Log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"shard": cfg.ShardId,
	}).Info("Game service initialized")

	return s, nil
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.actionHandlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.actionHandlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.actionHandlers[domain.ActionPickup] = handlers.WithEmptyPayload(actions.HandlePickup)
	s.actionHandlers[domain.ActionDrop] = handlers.WithPayload(actions.HandleDrop)
	s.actionHandlers[domain.ActionUse] = handlers.WithPayload(actions.HandleUse)
	s.actionHandlers[domain.ActionDescend] = handlers.WithEmptyPayload(actions.HandleDescend)
	s.actionHandlers[domain.ActionCharacter] = handlers.WithEmptyPayload(actions.HandleCharacter)
	s.actionHandlers[domain.ActionInventory] = handlers.WithEmptyPayload(actions.HandleInventory)

	// Читы доступны только через debug-эндпоинт, в общий маппинг
	// действий они не попадают.
	s.adminHandlers["teleport"] = handlers.WithPayload(admin.HandleTeleport)
	s.adminHandlers["heal"] = handlers.WithEmptyPayload(admin.HandleHeal)
	s.adminHandlers["reveal"] = handlers.WithEmptyPayload(admin.HandleRevealMap)
	s.adminHandlers["kill"] = handlers.WithPayload(admin.HandleKill)
}

// adminRequest - чит-команда, ожидающая своей очереди в игровом цикле.
type adminRequest struct {
	name    string
	payload []byte
	reply   chan adminReply
}

type adminReply struct {
	msg string
	err error
}

// ExecuteAdmin выполняет чит-команду из debug-эндпоинта. Команда не
// трогает мир сама: она встаёт в очередь игрового цикла и ждёт ответа,
// так что мутации остаются в единственной горутине. Требует Start().
func (s *GameService) ExecuteAdmin(name string, payload []byte) (string, error) {
	req := adminRequest{
		name:    name,
		payload: payload,
		reply:   make(chan adminReply, 1),
	}
	s.adminChan <- req
	res := <-req.reply
	return res.msg, res.err
}

// applyAdmin - исполнение чита. Вызывается только из runGameLoop.
func (s *GameService) applyAdmin(req adminRequest) adminReply {
	handler, ok := s.adminHandlers[req.name]
	if !ok {
		return adminReply{err: fmt.Errorf("unknown admin command %q", req.name)}
	}
	ctx := handlers.Context{
		Grid:    s.Current.Grid,
		Actor:   s.Player,
		Visible: s.Current.Visible,
		Stairs:  s.Current.Stairs,
	}
	result, err := handler(ctx, req.payload)
	if err != nil {
		return adminReply{err: err}
	}
	s.Current.RefreshFOV()
	msg := ""
	for _, m := range result.Messages {
		s.Current.AddLog(m, result.MsgType)
		msg = m
	}
	return adminReply{msg: msg}
}

// Start запускает игровой цикл в отдельной горутине.
func (s *GameService) Start() {
	go s.runGameLoop()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action received")
		return
	}

	cmd := domain.InternalCommand{
		Action:  actionType,
		Payload: externalCmd.Payload,
	}
	if externalCmd.Token != "" {
		if token, err := types.ParseEntityID(externalCmd.Token); err == nil {
			cmd.Token = token
		}
	}

	s.CommandChan <- cmd
}

// runGameLoop - единственная горутина, мутирующая мир. Админские
// читы проходят через тот же цикл, чтобы не гонять мир из HTTP-горутин.
func (s *GameService) runGameLoop() {
	logger.Log.Info("Game loop started")

	for {
		select {
		case cmd, ok := <-s.CommandChan:
			if !ok {
				return
			}
			event := s.Current.ExecuteCommand(cmd)
			s.processEvent(event)
			s.publishUpdate()

		case req := <-s.adminChan:
			req.reply <- s.applyAdmin(req)
			s.publishUpdate()
		}
	}
}

// publishUpdate рассылает свежий снимок мира подписчику героя.
func (s *GameService) publishUpdate() {
	state := s.BuildStateFor(s.Player)
	s.Hub.SendTo(s.Player.ID, *state)
}
