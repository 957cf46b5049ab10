package session

import (
	"github.com/abhisek/trivia/internal/game"
)

// sessionFiledMsg is sent once a completed session was recorded.
type sessionFiledMsg struct {
	Outcome game.Outcome
	Err     error
}
