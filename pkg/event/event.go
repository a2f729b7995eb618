package event

type Event struct {
	Message string
}

type NewGameEvent struct {
	Event
}

type GameOverEvent struct {
	Event
	Score     int
	HighScore int
}

type LinesClearedEvent struct {
	Event
	Lines int
	Score int
}
