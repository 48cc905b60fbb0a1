package entities

// OptionsPerQuestion is the number of choices shown for every question.
const OptionsPerQuestion = 4

// Question is a single multiple choice prompt drawn for a quiz session.
type Question struct {
	Romaji        string   // romaji shown in the prompt
	CorrectAnswer string   // hiragana character matching Romaji
	Options       []string // shuffled candidate characters
	CorrectIndex  int      // index of CorrectAnswer in Options
}

// IsCorrect reports whether the option at index is the correct answer.
func (q *Question) IsCorrect(index int) bool {
	if index < 0 || index >= len(q.Options) {
		return false
	}
	return q.Options[index] == q.CorrectAnswer
}
