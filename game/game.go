// Package game implements the state of a single hangman round: the
// secret word, the letters guessed so far, and the win/loss bookkeeping.
package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"lukechampine.com/frand"

	"github.com/brandonayton/hangman/gallows"
	"github.com/brandonayton/hangman/wordbank"
)

// DefaultMaxWrong is how many wrong guesses end the round unless
// configured otherwise.
const DefaultMaxWrong = 6

var (
	// ErrInvalidInput is returned for any guess that is not a single
	// alphabetic character. The state is untouched.
	ErrInvalidInput = errors.New("enter a single letter (A-Z)")
	// ErrGameOver is returned for guesses after the round is won or
	// lost. Terminal states accept no further guesses.
	ErrGameOver = errors.New("the round is over")
)

// Outcome is the result of applying one guess.
type Outcome int

const (
	Hit Outcome = iota
	Miss
	AlreadyGuessed
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case AlreadyGuessed:
		return "already guessed"
	}
	return "unknown"
}

// Status is where the round stands.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Game is the mutable per-round state. Create one with New per round;
// it is not safe for concurrent use and does not need to be.
type Game struct {
	secret      string
	hint        string
	guessed     map[rune]bool
	wrongCount  int
	maxWrong    int
	placeholder rune

	hintUsed   bool
	hintLetter rune
	conceded   bool
}

// New starts a round for the given entry. maxWrong must be positive.
func New(entry wordbank.Entry, maxWrong int) (*Game, error) {
	if maxWrong <= 0 {
		return nil, fmt.Errorf("max wrong guesses must be positive, got %d", maxWrong)
	}
	secret := strings.ToUpper(strings.TrimSpace(entry.Word))
	if secret == "" {
		return nil, errors.New("cannot start a round with an empty word")
	}
	return &Game{
		secret:      secret,
		hint:        entry.Hint,
		guessed:     map[rune]bool{},
		maxWrong:    maxWrong,
		placeholder: '_',
	}, nil
}

// SetPlaceholder changes the character standing in for unguessed
// letters in MaskedWord.
func (g *Game) SetPlaceholder(r rune) {
	g.placeholder = r
}

func normalizeLetter(letter rune) (rune, bool) {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return 0, false
	}
	return upper, true
}

// Guess applies one letter. Case is normalized. Guesses on a finished
// round return ErrGameOver; anything but a single A-Z letter returns
// ErrInvalidInput. Neither error mutates state.
func (g *Game) Guess(letter rune) (Outcome, error) {
	if g.Status() != InProgress {
		return 0, ErrGameOver
	}
	upper, ok := normalizeLetter(letter)
	if !ok {
		return 0, ErrInvalidInput
	}
	if g.guessed[upper] {
		return AlreadyGuessed, nil
	}
	g.guessed[upper] = true
	if !strings.ContainsRune(g.secret, upper) {
		g.wrongCount++
		return Miss, nil
	}
	return Hit, nil
}

// Status reports InProgress, Won, or Lost. Won means every letter of
// the secret has been guessed; Lost means the wrong-guess budget is
// spent or the player conceded.
func (g *Game) Status() Status {
	if g.isWon() {
		return Won
	}
	if g.conceded || g.wrongCount >= g.maxWrong {
		return Lost
	}
	return InProgress
}

func (g *Game) isWon() bool {
	for _, r := range g.secret {
		if unicode.IsLetter(r) && !g.guessed[r] {
			return false
		}
	}
	return true
}

// Concede ends the round as a loss.
func (g *Game) Concede() {
	g.conceded = true
}

// MaskedWord shows the secret with unguessed letters hidden behind the
// placeholder. Non-letter characters (spaces) appear verbatim.
func (g *Game) MaskedWord() string {
	var sb strings.Builder
	for _, r := range g.secret {
		switch {
		case !unicode.IsLetter(r):
			sb.WriteRune(r)
		case g.guessed[r]:
			sb.WriteRune(r)
		default:
			sb.WriteRune(g.placeholder)
		}
	}
	return sb.String()
}

// GuessedLetters returns every guessed letter in alphabetical order.
func (g *Game) GuessedLetters() []rune {
	letters := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

func (g *Game) WrongCount() int { return g.wrongCount }
func (g *Game) MaxWrong() int   { return g.maxWrong }
func (g *Game) Secret() string  { return g.secret }
func (g *Game) Hint() string    { return g.hint }

// PartialReveal gives away the first and last letters. Words of two or
// fewer letters return an empty string; there would be nothing left to
// guess.
func (g *Game) PartialReveal() string {
	letters := []rune(g.secret)
	if len(letters) <= 2 {
		return ""
	}
	return fmt.Sprintf("Starts with '%c', ends with '%c'", letters[0], letters[len(letters)-1])
}

// RevealHint marks one random unguessed secret letter as guessed, free
// of penalty, at most once per round. Repeat calls return the same
// letter without touching state.
func (g *Game) RevealHint() (rune, error) {
	if g.Status() != InProgress {
		return 0, ErrGameOver
	}
	if g.hintUsed {
		return g.hintLetter, nil
	}
	var unguessed []rune
	seen := map[rune]bool{}
	for _, r := range g.secret {
		if unicode.IsLetter(r) && !g.guessed[r] && !seen[r] {
			unguessed = append(unguessed, r)
			seen[r] = true
		}
	}
	// Unreachable while InProgress, but don't panic on it.
	if len(unguessed) == 0 {
		return 0, errors.New("no unguessed letters left")
	}
	letter := unguessed[frand.Intn(len(unguessed))]
	g.guessed[letter] = true
	g.hintUsed = true
	g.hintLetter = letter
	return letter, nil
}

// HintUsed reports whether the one reveal of the round is spent.
func (g *Game) HintUsed() bool {
	return g.hintUsed
}

// ToDisplayText renders the board: masked word, guessed letters, the
// wrong-guess tally and gallows, plus the teaser after two misses and
// the hint text after three.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	divider := strings.Repeat("=", 40)
	sb.WriteString(divider + "\n")
	sb.WriteString("HANGMAN - GUESS THE PROGRAMMING LANGUAGE\n")
	sb.WriteString(divider + "\n")

	sb.WriteString("Word: ")
	for i, r := range g.MaskedWord() {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	sb.WriteRune('\n')

	if letters := g.GuessedLetters(); len(letters) > 0 {
		sb.WriteString("Guessed letters: ")
		for i, r := range letters {
			if i > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}

	fmt.Fprintf(&sb, "Wrong guesses: %d/%d\n", g.wrongCount, g.maxWrong)
	sb.WriteString(gallows.Render(g.wrongCount))
	sb.WriteRune('\n')

	if g.wrongCount == 2 {
		if teaser := g.PartialReveal(); teaser != "" {
			sb.WriteString(teaser + "\n")
		}
	}
	if g.wrongCount >= 3 && g.hint != "" {
		sb.WriteString("Hint: " + g.hint + "\n")
	}
	return sb.String()
}
