package bot

import "time"

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

const MEDIUM_DEPTH = 3

// ParseDifficulty validates and returns the bot difficulty.
// Defaults to Hard, which is the full-strength engine.
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// NewMoveChooser builds the policy for a difficulty. hardDepth is the
// search depth of the hard level; below 1 it falls back to MINIMAX_DEPTH.
func NewMoveChooser(difficulty BotDifficulty, hardDepth int) MoveChooser {
	if hardDepth < 1 {
		hardDepth = MINIMAX_DEPTH
	}

	switch difficulty {
	case DifficultyEasy:
		return NewEasyBot(time.Now().UnixNano())
	case DifficultyMedium:
		return NewEngine(min(MEDIUM_DEPTH, hardDepth))
	default:
		return NewEngine(hardDepth)
	}
}

var BotNames = map[BotDifficulty]string{
	DifficultyEasy:   "Alice",
	DifficultyMedium: "Bob",
	DifficultyHard:   "Charles",
}

func GetBotName(difficulty BotDifficulty) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}
