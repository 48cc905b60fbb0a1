// Package entities contains domain entities used across the application.
package entities

// Kana represents one base hiragana symbol and its romaji reading.
type Kana struct {
	Character string // hiragana symbol, e.g. "あ"
	Romaji    string // romanized reading, e.g. "a"
}
