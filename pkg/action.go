package pkg

type Action string

const (
	ActionNewGamePrompt Action = "A game is in progress. Start a new game anyway?"
	ActionNewGameAccept        = "New game"
	ActionNewGameReject        = "Keep playing"
	ActionGameOver             = "Game over! Press n to play again"
	ActionWelcome              = "Press n to start, q to quit"
)
