/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WordPair is the pair of words used for one round.
type WordPair struct {
	Odd    string `json:"oddWord" mapstructure:"oddWord"`
	Common string `json:"commonWord" mapstructure:"commonWord"`
}

// DefaultWordPairs is the built-in catalog.
var DefaultWordPairs = []WordPair{
	{Odd: "Tea", Common: "Coffee"},
	{Odd: "Cat", Common: "Dog"},
	{Odd: "Beach", Common: "Pool"},
	{Odd: "Guitar", Common: "Violin"},
	{Odd: "Train", Common: "Bus"},
	{Odd: "Pizza", Common: "Burger"},
	{Odd: "Moon", Common: "Sun"},
	{Odd: "Library", Common: "Bookstore"},
	{Odd: "Snow", Common: "Rain"},
	{Odd: "Doctor", Common: "Nurse"},
	{Odd: "Football", Common: "Basketball"},
	{Odd: "Piano", Common: "Keyboard"},
	{Odd: "Apple", Common: "Pear"},
	{Odd: "Castle", Common: "Palace"},
	{Odd: "Wolf", Common: "Fox"},
	{Odd: "Pen", Common: "Pencil"},
	{Odd: "Lake", Common: "River"},
	{Odd: "Candle", Common: "Lamp"},
	{Odd: "Cinema", Common: "Theater"},
	{Odd: "Honey", Common: "Jam"},
}

// LoadWordPairs reads a catalog from a JSON, YAML or TOML file with a
// top-level "pairs" list of {oddWord, commonWord} entries.
func LoadWordPairs(path string) ([]WordPair, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}

	var pairs []WordPair
	if err := v.UnmarshalKey("pairs", &pairs); err != nil {
		return nil, fmt.Errorf("parsing word list %s: %w", path, err)
	}

	if err := validatePairs(pairs); err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}

	return pairs, nil
}

func validatePairs(pairs []WordPair) error {
	if len(pairs) == 0 {
		return errors.New("no word pairs defined")
	}

	for i, p := range pairs {
		odd, common := strings.TrimSpace(p.Odd), strings.TrimSpace(p.Common)
		if odd == "" || common == "" {
			return fmt.Errorf("pair %d has an empty word", i)
		}
		if strings.EqualFold(odd, common) {
			return fmt.Errorf("pair %d uses %q for both words", i, odd)
		}
	}

	return nil
}
