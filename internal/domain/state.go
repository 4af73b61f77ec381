package domain

// Mode - режим игры. Tagged union: полезная нагрузка активного
// режима лежит рядом в State (AimTarget для Aiming, Session для
// Fishing, FinalScore для End).
type Mode uint8

const (
	ModeExploring Mode = iota
	ModeAiming
	ModeFishing
	ModeEnd
)

func (m Mode) String() string {
	switch m {
	case ModeAiming:
		return "AIMING"
	case ModeFishing:
		return "FISHING"
	case ModeEnd:
		return "END"
	default:
		return "EXPLORING"
	}
}

// Hazard - временная опасность на тайле (медуза). Бьет игрока
// при контакте, исчезает когда Turns доходит до нуля.
type Hazard struct {
	Pos   Position `json:"pos"`
	Turns int      `json:"turns"`
}

// State - все изменяемое состояние одного забега.
// Монопольно принадлежит планировщику хода (engine.Game); хендлеры
// получают его по ссылке через handlers.Context, больше никто на
// него не алиасится.
type State struct {
	World  *GameWorld `json:"-"`
	Player Player     `json:"player"`
	Fishes []Fish     `json:"fishes"`

	Mode Mode `json:"mode"`
	// AimTarget - курсор прицеливания (валиден в ModeAiming).
	AimTarget Position `json:"aim_target"`
	// Session - активная рыбалка. Инвариант: не-nil тогда и только
	// тогда, когда Mode == ModeFishing.
	Session *FishingSession `json:"session,omitempty"`
	// FinalScore - счет забега (валиден в ModeEnd).
	FinalScore int `json:"final_score"`

	// Clock - счетчик ходов. Монотонно растет, ровно +1 за каждый
	// принятый интент. Владелец - планировщик.
	Clock int `json:"clock"`
	// TimeOfDay - Dawn/Day/Dusk/Night, производное от Clock.
	TimeOfDay string `json:"time_of_day"`

	// StormTurns - ходы до конца шторма. 0 = шторма нет.
	StormTurns int      `json:"storm_turns"`
	Hazards    []Hazard `json:"hazards,omitempty"`

	// Reeling - игрок подматывал леску в ЭТОМ ходу.
	// Транзитный флаг, сбрасывается планировщиком каждый ход.
	Reeling bool `json:"-"`
}
