package shell

// ProgramState is the outer screen the shell is showing
type ProgramState int

const (
	StateMenu ProgramState = iota
	StateVisualizer
	StateGames
)

func (s ProgramState) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateVisualizer:
		return "VISUALIZER"
	case StateGames:
		return "GAMES"
	}
	return "UNKNOWN"
}

// GameState is the inner screen, only meaningful while in StateGames
type GameState int

const (
	GameMenu GameState = iota
	GameNotePicker
	GameArpeggio // not implemented yet, shows a notice
)

func (g GameState) String() string {
	switch g {
	case GameMenu:
		return "MENU"
	case GameNotePicker:
		return "NOTEPICKER"
	case GameArpeggio:
		return "ARPEGGIO"
	}
	return "UNKNOWN"
}
