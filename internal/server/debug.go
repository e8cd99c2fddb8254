package server

import (
	"encoding/json"
	"io"
	"net/http"

	"tombs-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/level", h.handleLevelSummary)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/admin", h.handleAdmin)
}

// /debug/level - сводка по активному уровню
func (h *DebugHandler) handleLevelSummary(w http.ResponseWriter, r *http.Request) {
	inst := h.Service.Current
	writeJSON(w, map[string]interface{}{
		"depth":        inst.Depth,
		"seed":         inst.Seed,
		"turn":         inst.Turn,
		"width":        inst.Grid.Width,
		"height":       inst.Grid.Height,
		"entity_count": len(inst.Entities),
		"game_over":    inst.GameOver,
	})
}

// /debug/entities - дамп всех сущностей уровня (включая скрытый AI-стейт)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Current.Entities)
}

// /debug/queue - просмотр очереди ходов
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	// TurnQueue - это куча, порядок в слайсе может не соответствовать
	// порядку извлечения, но для дебага сойдет.
	writeJSON(w, h.Service.Current.TurnManager.DebugDump())
}

// /debug/admin?cmd=heal - чит-команды. POST body = payload команды.
func (h *DebugHandler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("cmd")
	payload, _ := io.ReadAll(io.LimitReader(r.Body, 4096))
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	msg, err := h.Service.ExecuteAdmin(name, payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"result": msg})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
