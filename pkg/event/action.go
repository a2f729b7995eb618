package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionNewGame
	ActionRotate
	ActionSoftDrop
	ActionMoveLeft
	ActionMoveRight
)

func (a GameAction) String() string {
	switch a {
	case ActionNewGame:
		return "NewGame"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	default:
		return "Unknown"
	}
}
