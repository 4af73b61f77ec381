package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" забега, видимый для клиента,
// и отправляется после каждого обработанного хода.
type ServerResponse struct {
	// Type тип сообщения: "INIT" для первого снимка, дальше "UPDATE".
	Type string `json:"type"`

	// Tick номер текущего хода. Увеличивается на 1 за каждое
	// принятое действие игрока.
	Tick int `json:"tick"`

	// Mode текущий режим: EXPLORING, AIMING, FISHING, END.
	Mode string `json:"mode"`

	// TimeOfDay сегмент суток: Dawn, Day, Dusk, Night.
	TimeOfDay string `json:"timeOfDay"`

	// Storm true, пока над островом шторм.
	Storm bool `json:"storm,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез видимых тайлов.
	Map []TileView `json:"map,omitempty"`

	// Player состояние игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Fishes видимые рыбы (позиции без вида - вид раскрывается
	// только в момент поклевки).
	Fishes []FishView `json:"fishes,omitempty"`

	// Hazards видимые опасные клетки (медузы и т.п.).
	Hazards []HazardView `json:"hazards,omitempty"`

	// Meter шкала натяжения. Присутствует только в режиме FISHING
	// на фазе вываживания.
	Meter *MeterView `json:"meter,omitempty"`

	// AimTarget точка прицеливания. Присутствует только в режиме AIMING.
	AimTarget *PositionView `json:"aimTarget,omitempty"`

	// Score итоговый счет. Присутствует только в режиме END.
	Score int `json:"score,omitempty"`

	// Logs срез новых сообщений, сгенерированных этим ходом.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Kind тип тайла: LAND, SHALLOW, DEEP.
	Kind string `json:"kind"`

	// Depth глубина в метрах (0 для суши).
	Depth int `json:"depth,omitempty"`

	// IsVisible true, если тайл в текущем поле зрения.
	// Вне поля зрения (глубина, шторм) тайлы рендерятся тускло.
	IsVisible bool `json:"isVisible"`
}

// PositionView это DTO для точки на карте.
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlayerView это DTO для состояния игрока.
type PlayerView struct {
	Pos    PositionView `json:"pos"`
	HP     int          `json:"hp"`
	MaxHP  int          `json:"maxHp"`
	Hunger int          `json:"hunger"`
	Line   int          `json:"line"`

	// Inventory пойманные рыбы.
	Inventory []CatchView `json:"inventory,omitempty"`

	// CannedFood запас консервов.
	CannedFood int `json:"cannedFood,omitempty"`

	// Rod, Reel, Lure названия экипированной снасти.
	Rod  string `json:"rod,omitempty"`
	Reel string `json:"reel,omitempty"`
	Lure string `json:"lure,omitempty"`
}

// CatchView это DTO для пойманной рыбы в инвентаре.
type CatchView struct {
	Name      string `json:"name"`
	Legendary bool   `json:"legendary,omitempty"`
}

// FishView это DTO для рыбы в мире. Вид намеренно не раскрывается.
type FishView struct {
	Pos PositionView `json:"pos"`
}

// HazardView это DTO для опасной клетки.
type HazardView struct {
	Pos PositionView `json:"pos"`
}

// MeterView это DTO шкалы натяжения в фазе вываживания.
type MeterView struct {
	Tension    int `json:"tension"`
	MaxTension int `json:"maxTension"`
	Reels      int `json:"reels"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, FISHING, CAPTURE, EVENT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением
// (MOVE, и сдвиг прицела в режиме AIMING).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ItemPayload используется для действий со снаряжением (EQUIP).
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// SavePayload используется для команды SAVE.
type SavePayload struct {
	Path string `json:"path,omitempty"`
}
