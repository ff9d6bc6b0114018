// Package wordbank holds the candidate secret words and their hints.
// The default bank is embedded in the binary; an alternative bank can
// be loaded from a YAML file of the same shape.
package wordbank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"
)

//go:embed words.yaml
var defaultBankYAML []byte

// ErrEmptyBank means there are no words to pick from. This is fatal at
// startup; a game cannot start without a bank.
var ErrEmptyBank = errors.New("word bank has no entries")

// Entry is a single candidate word. Words are uppercase ASCII letters
// (spaces allowed between words of a multi-word name); the hint is
// optional flavor text shown to struggling players.
type Entry struct {
	Word string `yaml:"word"`
	Hint string `yaml:"hint,omitempty"`
}

// Bank is an immutable, ordered collection of entries.
type Bank struct {
	entries []Entry
}

type bankFile struct {
	Words []Entry `yaml:"words"`
}

// Default parses the embedded word bank.
func Default() (*Bank, error) {
	return parse(defaultBankYAML)
}

// Load reads a word bank from a YAML file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// New builds a bank from entries, applying the same normalization and
// validation as the file loaders.
func New(entries []Entry) (*Bank, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyBank
	}
	seen := map[string]bool{}
	normalized := make([]Entry, 0, len(entries))
	for _, e := range entries {
		word := strings.ToUpper(strings.TrimSpace(e.Word))
		if word == "" {
			return nil, errors.New("word bank entry has an empty word")
		}
		for _, r := range word {
			if (r < 'A' || r > 'Z') && r != ' ' {
				return nil, fmt.Errorf("word %q contains non-letter character %q", word, r)
			}
		}
		if seen[word] {
			return nil, fmt.Errorf("duplicate word %q in bank", word)
		}
		seen[word] = true
		normalized = append(normalized, Entry{Word: word, Hint: e.Hint})
	}
	return &Bank{entries: normalized}, nil
}

func parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing word bank: %w", err)
	}
	return New(f.Words)
}

// All returns every entry in stable order.
func (b *Bank) All() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Names returns just the words, in bank order.
func (b *Bank) Names() []string {
	return lo.Map(b.entries, func(e Entry, _ int) string {
		return e.Word
	})
}

func (b *Bank) Len() int {
	return len(b.entries)
}

// Pick selects an entry uniformly at random. Callers never see the
// selection strategy; swapping it out requires no caller changes.
func (b *Bank) Pick() (Entry, error) {
	if len(b.entries) == 0 {
		return Entry{}, ErrEmptyBank
	}
	return b.entries[frand.Intn(len(b.entries))], nil
}
