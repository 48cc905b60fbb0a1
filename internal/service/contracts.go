package service

import (
	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

type KanaRepository interface {
	GetRandom() (entities.Kana, error)
	CharacterFor(romaji string) (string, error)
}

type OptionsGenerator interface {
	Generate(correct string) ([]string, error)
}
