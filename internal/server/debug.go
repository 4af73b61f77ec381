package server

import (
	"encoding/json"
	"net/http"

	"github.com/katuneko/lurhook/internal/engine"
	"github.com/katuneko/lurhook/internal/engine/handlers/admin"
	"github.com/katuneko/lurhook/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Эндпоинты дергают состояние мимо игрового цикла: это осознанный
// компромисс, допустимый только для локальной отладки.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/replay", h.handleReplay)
	mux.HandleFunc("/debug/scores", h.handleScores)
	mux.HandleFunc("/debug/teleport", h.handleTeleport)
	mux.HandleFunc("/debug/spawn", h.handleSpawn)
}

// /debug/state - полный дамп состояния забега (включая рыб и сессию)
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Game.State())
}

// /debug/replay - текущая запись интентов
func (h *DebugHandler) handleReplay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Game.Replay)
}

// /debug/scores?limit=10 - таблица рекордов из архива
func (h *DebugHandler) handleScores(w http.ResponseWriter, r *http.Request) {
	if h.Service.Archive == nil {
		http.Error(w, "score archive disabled", http.StatusNotFound)
		return
	}
	runs, err := h.Service.Archive.Best(10)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, runs)
}

// /debug/teleport - POST {"x":10,"y":10}
func (h *DebugHandler) handleTeleport(w http.ResponseWriter, r *http.Request) {
	var p admin.TeleportPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, _ := admin.HandleTeleport(h.Service.Game.HandlerContext(), p)
	logger.Log.WithField("result", res.Msg).Warn("Debug teleport used")
	writeJSON(w, res)
}

// /debug/spawn - POST {"species":"minnow"}
func (h *DebugHandler) handleSpawn(w http.ResponseWriter, r *http.Request) {
	var p admin.SpawnPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, _ := admin.HandleSpawn(h.Service.Game.HandlerContext(), p)
	logger.Log.WithField("result", res.Msg).Warn("Debug spawn used")
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой архив), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
