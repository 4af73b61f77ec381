package domain

// FishingPhase - фаза вложенного автомата рыбалки.
// Жизненный цикл: Casting -> Waiting -> Dueling -> (результат).
type FishingPhase uint8

const (
	// PhaseCasting - леска летит к цели. Ровно один ход.
	PhaseCasting FishingPhase = iota
	// PhaseWaiting - наживка в воде, тикает таймер ожидания.
	PhaseWaiting
	// PhaseDueling - рыба на крючке, идет дуэль натяжения.
	PhaseDueling
)

func (p FishingPhase) String() string {
	switch p {
	case PhaseWaiting:
		return "WAITING"
	case PhaseDueling:
		return "DUELING"
	default:
		return "CASTING"
	}
}

// FishingResolution - исход одного тика дуэли.
type FishingResolution uint8

const (
	FishingOngoing FishingResolution = iota
	// FishingSuccess - рыба поймана.
	FishingSuccess
	// FishingEscape - сход с крючка (натяжение упало до нуля)
	// или рыба так и не клюнула.
	FishingEscape
	// FishingBreak - обрыв лески (натяжение достигло максимума).
	FishingBreak
)

// TensionMeter - ограниченная шкала натяжения лески.
// Инварианты: Tension <= 0 => сход; Tension >= MaxTension => обрыв;
// других выходов из дуэли нет.
type TensionMeter struct {
	Tension    int `json:"tension"`
	MaxTension int `json:"max_tension"`
	// CaptureAt - порог "рыба выдохлась": натяжение на отметке или
	// ниже при достаточном числе успешных подмоток дает поимку.
	CaptureAt int `json:"capture_at"`
	// ReelsNeeded - сколько успешных подмоток нужно для поимки.
	ReelsNeeded int `json:"reels_needed"`
	// Reels - счетчик успешных подмоток в этой дуэли.
	Reels int `json:"reels"`
}

// NewTensionMeter собирает шкалу. Крючок засекается под полной
// нагрузкой: стартовое натяжение равно максимуму.
func NewTensionMeter(maxTension, captureAt, reelsNeeded int) TensionMeter {
	return TensionMeter{
		Tension:     maxTension,
		MaxTension:  maxTension,
		CaptureAt:   captureAt,
		ReelsNeeded: reelsNeeded,
	}
}

// Apply применяет дельту одного хода и возвращает исход.
// Порядок проверок фиксирован: сначала сход (<=0), затем обрыв
// (>=max), затем поимка. Ноль ВСЕГДА означает сход, даже если
// порог поимки выше нуля.
func (m *TensionMeter) Apply(delta int, reeling bool) FishingResolution {
	m.Tension += delta
	if reeling {
		m.Reels++
	}
	switch {
	case m.Tension <= 0:
		return FishingEscape
	case m.Tension >= m.MaxTension:
		return FishingBreak
	case reeling && m.Reels >= m.ReelsNeeded && m.Tension <= m.CaptureAt:
		return FishingSuccess
	default:
		return FishingOngoing
	}
}

// FishingSession - временное состояние одной попытки рыбалки.
// Создается при подтверждении заброса, уничтожается при любом
// исходе. Вне режима Fishing существовать не может.
type FishingSession struct {
	Phase FishingPhase `json:"phase"`
	// Target - тайл, в который заброшена наживка.
	Target Position `json:"target"`
	// CastPath - траектория полета лески (для рендера).
	CastPath []Position `json:"cast_path,omitempty"`
	CastStep int        `json:"cast_step"`
	// Wait - ходы до поклевки (тикает в PhaseWaiting).
	Wait int `json:"wait"`
	// Candidate - клюнувшая рыба. nil до поклевки.
	Candidate *Fish `json:"candidate,omitempty"`
	// Meter - снимок шкалы натяжения (валиден в PhaseDueling).
	Meter TensionMeter `json:"meter"`
}
