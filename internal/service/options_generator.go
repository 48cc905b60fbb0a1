package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

var (
	ErrInsufficientData = errors.New("not enough characters to build options")
	ErrUnknownCharacter = errors.New("character is not in the table")
)

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct {
	allCharacters []string
	rng           *rand.Rand
}

// NewOptionGenerator creates a new option generator over the given characters.
func NewOptionGenerator(allCharacters []string, rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		allCharacters: allCharacters,
		rng:           rng,
	}
}

// Generate returns entities.OptionsPerQuestion distinct characters in random order,
// one of which is correct.
func (g *OptionGenerator) Generate(correct string) ([]string, error) {
	if len(g.allCharacters) < entities.OptionsPerQuestion {
		return nil, fmt.Errorf("have %d characters, need %d: %w",
			len(g.allCharacters), entities.OptionsPerQuestion, ErrInsufficientData)
	}

	// Create a pool of candidates without the correct answer.
	candidates := make([]string, 0, len(g.allCharacters)-1)
	found := false
	for _, c := range g.allCharacters {
		if c == correct {
			found = true
			continue
		}
		candidates = append(candidates, c)
	}
	if !found {
		return nil, fmt.Errorf("%q: %w", correct, ErrUnknownCharacter)
	}

	// Shuffle candidates and take the distractors from the front.
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := make([]string, 0, entities.OptionsPerQuestion)
	options = append(options, candidates[:entities.OptionsPerQuestion-1]...)
	options = append(options, correct)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}
