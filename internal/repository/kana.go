package repository

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

var (
	ErrKanaNotFound  = errors.New("kana not found")
	ErrDuplicateKana = errors.New("duplicate kana")
)

// hiragana is the fixed table of the 46 base hiragana symbols.
var hiragana = []entities.Kana{
	{Character: "あ", Romaji: "a"}, {Character: "い", Romaji: "i"}, {Character: "う", Romaji: "u"},
	{Character: "え", Romaji: "e"}, {Character: "お", Romaji: "o"},
	{Character: "か", Romaji: "ka"}, {Character: "き", Romaji: "ki"}, {Character: "く", Romaji: "ku"},
	{Character: "け", Romaji: "ke"}, {Character: "こ", Romaji: "ko"},
	{Character: "さ", Romaji: "sa"}, {Character: "し", Romaji: "shi"}, {Character: "す", Romaji: "su"},
	{Character: "せ", Romaji: "se"}, {Character: "そ", Romaji: "so"},
	{Character: "た", Romaji: "ta"}, {Character: "ち", Romaji: "chi"}, {Character: "つ", Romaji: "tsu"},
	{Character: "て", Romaji: "te"}, {Character: "と", Romaji: "to"},
	{Character: "な", Romaji: "na"}, {Character: "に", Romaji: "ni"}, {Character: "ぬ", Romaji: "nu"},
	{Character: "ね", Romaji: "ne"}, {Character: "の", Romaji: "no"},
	{Character: "は", Romaji: "ha"}, {Character: "ひ", Romaji: "hi"}, {Character: "ふ", Romaji: "fu"},
	{Character: "へ", Romaji: "he"}, {Character: "ほ", Romaji: "ho"},
	{Character: "ま", Romaji: "ma"}, {Character: "み", Romaji: "mi"}, {Character: "む", Romaji: "mu"},
	{Character: "め", Romaji: "me"}, {Character: "も", Romaji: "mo"},
	{Character: "や", Romaji: "ya"}, {Character: "ゆ", Romaji: "yu"}, {Character: "よ", Romaji: "yo"},
	{Character: "ら", Romaji: "ra"}, {Character: "り", Romaji: "ri"}, {Character: "る", Romaji: "ru"},
	{Character: "れ", Romaji: "re"}, {Character: "ろ", Romaji: "ro"},
	{Character: "わ", Romaji: "wa"}, {Character: "を", Romaji: "wo"},
	{Character: "ん", Romaji: "n"},
}

// KanaRepository provides read-only access to the hiragana table.
// The table is built once and never mutated afterwards.
type KanaRepository struct {
	kana       []entities.Kana
	byRomaji   map[string]string
	characters []string
	romaji     []string

	rng *rand.Rand
}

// NewKanaRepository creates a KanaRepository over the built-in hiragana table.
func NewKanaRepository(rng *rand.Rand) (*KanaRepository, error) {
	return newKanaRepository(hiragana, rng)
}

func newKanaRepository(table []entities.Kana, rng *rand.Rand) (*KanaRepository, error) {
	r := &KanaRepository{
		kana:       make([]entities.Kana, 0, len(table)),
		byRomaji:   make(map[string]string, len(table)),
		characters: make([]string, 0, len(table)),
		romaji:     make([]string, 0, len(table)),
		rng:        rng,
	}

	seenCharacters := make(map[string]struct{}, len(table))
	for _, k := range table {
		if _, ok := r.byRomaji[k.Romaji]; ok {
			return nil, fmt.Errorf("romaji %q: %w", k.Romaji, ErrDuplicateKana)
		}
		if _, ok := seenCharacters[k.Character]; ok {
			return nil, fmt.Errorf("character %q: %w", k.Character, ErrDuplicateKana)
		}
		seenCharacters[k.Character] = struct{}{}

		r.byRomaji[k.Romaji] = k.Character
		r.kana = append(r.kana, k)
		r.characters = append(r.characters, k.Character)
		r.romaji = append(r.romaji, k.Romaji)
	}

	return r, nil
}

// AllRomaji returns the romaji of every table entry in table order.
func (r *KanaRepository) AllRomaji() []string {
	return append([]string(nil), r.romaji...)
}

// AllCharacters returns every hiragana character in table order.
func (r *KanaRepository) AllCharacters() []string {
	return append([]string(nil), r.characters...)
}

// CharacterFor returns the hiragana character for the given romaji.
func (r *KanaRepository) CharacterFor(romaji string) (string, error) {
	character, ok := r.byRomaji[romaji]
	if !ok {
		return "", fmt.Errorf("romaji %q: %w", romaji, ErrKanaNotFound)
	}
	return character, nil
}

// GetRandom retrieves a random table entry. Every entry is equally likely.
func (r *KanaRepository) GetRandom() (entities.Kana, error) {
	if len(r.kana) == 0 {
		return entities.Kana{}, ErrKanaNotFound
	}

	return r.kana[r.rng.Intn(len(r.kana))], nil
}
