package domain

import "strings"

// ActionType - внутренний числовой идентификатор интента.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionCast
	ActionCancel
	ActionReel
	ActionWait
	ActionEat
	ActionCook
	ActionSnack
	ActionEquip
	ActionEndRun
	ActionSave
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":    ActionInit,
	"MOVE":    ActionMove,
	"CAST":    ActionCast,
	"CANCEL":  ActionCancel,
	"REEL":    ActionReel,
	"WAIT":    ActionWait,
	"EAT":     ActionEat,
	"COOK":    ActionCook,
	"SNACK":   ActionSnack,
	"EQUIP":   ActionEquip,
	"END_RUN": ActionEndRun,
	"SAVE":    ActionSave,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:   "INIT",
	ActionMove:   "MOVE",
	ActionCast:   "CAST",
	ActionCancel: "CANCEL",
	ActionReel:   "REEL",
	ActionWait:   "WAIT",
	ActionEat:    "EAT",
	ActionCook:   "COOK",
	ActionSnack:  "SNACK",
	ActionEquip:  "EQUIP",
	ActionEndRun: "END_RUN",
	ActionSave:   "SAVE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительно к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
