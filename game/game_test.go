package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonayton/hangman/wordbank"
)

func newTestGame(t *testing.T, word string, maxWrong int) *Game {
	t.Helper()
	g, err := New(wordbank.Entry{Word: word, Hint: "a hint"}, maxWrong)
	require.NoError(t, err)
	return g
}

func TestNewValidation(t *testing.T) {
	_, err := New(wordbank.Entry{Word: "RUST"}, 0)
	assert.Error(t, err)
	_, err = New(wordbank.Entry{Word: "   "}, 6)
	assert.Error(t, err)
}

func TestWinWithoutMisses(t *testing.T) {
	g := newTestGame(t, "RUST", 6)
	for _, r := range "RUST" {
		outcome, err := g.Guess(r)
		require.NoError(t, err)
		assert.Equal(t, Hit, outcome)
	}
	assert.Equal(t, Won, g.Status())
	assert.Equal(t, 0, g.WrongCount())
	assert.Equal(t, "RUST", g.MaskedWord())
}

func TestLossAtExactlyMaxWrong(t *testing.T) {
	g := newTestGame(t, "GO", 2)

	outcome, err := g.Guess('X')
	require.NoError(t, err)
	assert.Equal(t, Miss, outcome)
	assert.Equal(t, InProgress, g.Status(), "not lost before the budget is spent")

	outcome, err = g.Guess('Z')
	require.NoError(t, err)
	assert.Equal(t, Miss, outcome)
	assert.Equal(t, Lost, g.Status())
	assert.Equal(t, "__", g.MaskedWord())
}

func TestGuessRevealsEveryOccurrence(t *testing.T) {
	g := newTestGame(t, "PYTHON", 6)
	outcome, err := g.Guess('t')
	require.NoError(t, err)
	assert.Equal(t, Hit, outcome)
	assert.Equal(t, "__T___", g.MaskedWord())

	g2 := newTestGame(t, "ERLANG ELIXIR", 6)
	_, err = g2.Guess('e')
	require.NoError(t, err)
	assert.Equal(t, "E_____ E_____", g2.MaskedWord(), "reveals every occurrence, keeps the space")
}

func TestInvalidInputDoesNotMutate(t *testing.T) {
	g := newTestGame(t, "RUST", 6)
	for _, bad := range []rune{'5', '!', ' ', 'é'} {
		_, err := g.Guess(bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Equal(t, 0, g.WrongCount())
	assert.Empty(t, g.GuessedLetters())
}

func TestRepeatGuessIsIdempotent(t *testing.T) {
	g := newTestGame(t, "RUST", 6)

	outcome, err := g.Guess('x')
	require.NoError(t, err)
	assert.Equal(t, Miss, outcome)

	for i := 0; i < 3; i++ {
		outcome, err = g.Guess('X')
		require.NoError(t, err)
		assert.Equal(t, AlreadyGuessed, outcome)
	}
	assert.Equal(t, 1, g.WrongCount())
	assert.Equal(t, []rune{'X'}, g.GuessedLetters())

	// Repeating a hit is just as free.
	_, err = g.Guess('R')
	require.NoError(t, err)
	outcome, err = g.Guess('r')
	require.NoError(t, err)
	assert.Equal(t, AlreadyGuessed, outcome)
	assert.Equal(t, 1, g.WrongCount())
}

func TestWonIffNoPlaceholder(t *testing.T) {
	g := newTestGame(t, "JAVA", 6)
	letters := []rune{'J', 'A', 'V'}
	for i, r := range letters {
		if i > 0 {
			assert.Contains(t, g.MaskedWord(), "_")
			assert.NotEqual(t, Won, g.Status())
		}
		_, err := g.Guess(r)
		require.NoError(t, err)
	}
	assert.NotContains(t, g.MaskedWord(), "_")
	assert.Equal(t, Won, g.Status())
}

func TestTerminalStatesRejectGuesses(t *testing.T) {
	g := newTestGame(t, "GO", 1)
	_, err := g.Guess('X')
	require.NoError(t, err)
	require.Equal(t, Lost, g.Status())

	_, err = g.Guess('G')
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, "__", g.MaskedWord(), "no reveal after the round ends")

	g2 := newTestGame(t, "GO", 6)
	_, _ = g2.Guess('G')
	_, _ = g2.Guess('O')
	require.Equal(t, Won, g2.Status())
	_, err = g2.Guess('Z')
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 0, g2.WrongCount())
}

func TestConcede(t *testing.T) {
	g := newTestGame(t, "RUST", 6)
	g.Concede()
	assert.Equal(t, Lost, g.Status())
	_, err := g.Guess('R')
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestRevealHintOncePerRound(t *testing.T) {
	g := newTestGame(t, "SWIFT", 6)
	letter, err := g.RevealHint()
	require.NoError(t, err)
	assert.True(t, g.HintUsed())
	assert.Contains(t, "SWIFT", string(letter))
	assert.Contains(t, string(g.GuessedLetters()), string(letter))
	assert.Equal(t, 0, g.WrongCount(), "reveals cost nothing")

	again, err := g.RevealHint()
	require.NoError(t, err)
	assert.Equal(t, letter, again, "second reveal repeats the first")
	assert.Len(t, g.GuessedLetters(), 1)
}

func TestRevealHintCanWin(t *testing.T) {
	g := newTestGame(t, "GO", 6)
	_, err := g.Guess('G')
	require.NoError(t, err)
	letter, err := g.RevealHint()
	require.NoError(t, err)
	assert.Equal(t, 'O', letter)
	assert.Equal(t, Won, g.Status())

	_, err = g.RevealHint()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestPartialReveal(t *testing.T) {
	g := newTestGame(t, "SWIFT", 6)
	assert.Equal(t, "Starts with 'S', ends with 'T'", g.PartialReveal())

	short := newTestGame(t, "GO", 6)
	assert.Equal(t, "", short.PartialReveal())
}

func TestPlaceholder(t *testing.T) {
	g := newTestGame(t, "GO", 6)
	g.SetPlaceholder('*')
	assert.Equal(t, "**", g.MaskedWord())
}

func TestDisplayTextProgression(t *testing.T) {
	g := newTestGame(t, "PYTHON", 6)

	text := g.ToDisplayText()
	assert.Contains(t, text, "Word: _ _ _ _ _ _")
	assert.Contains(t, text, "Wrong guesses: 0/6")
	assert.NotContains(t, text, "Hint:")
	assert.NotContains(t, text, "Guessed letters:")

	_, _ = g.Guess('X')
	_, _ = g.Guess('Z')
	text = g.ToDisplayText()
	assert.Contains(t, text, "Guessed letters: X Z")
	assert.Contains(t, text, "Starts with 'P', ends with 'N'")
	assert.NotContains(t, text, "Hint:")

	_, _ = g.Guess('Q')
	text = g.ToDisplayText()
	assert.Contains(t, text, "Wrong guesses: 3/6")
	assert.Contains(t, text, "Hint: a hint")
	assert.NotContains(t, text, "Starts with", "the teaser shows only at exactly two misses")
}

func TestOutcomeAndStatusStrings(t *testing.T) {
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "already guessed", AlreadyGuessed.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}

func TestCaseInsensitiveSecrets(t *testing.T) {
	g, err := New(wordbank.Entry{Word: "rust"}, 6)
	require.NoError(t, err)
	_, err = g.Guess('R')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(g.MaskedWord(), "R"))
}
