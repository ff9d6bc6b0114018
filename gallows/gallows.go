// Package gallows renders the hangman drawing for a given number of
// wrong guesses.
package gallows

var stages = []string{
	`





`,
	`




========`,
	`  |
  |
  |
  |
  |
========`,
	`  ______
  |
  |
  |
  |
========`,
	`  ______
  |    |
  |    O
  |
  |
========`,
	`  ______
  |    |
  |    O
  |   /|\
  |
========`,
	`  ______
  |    |
  |    O
  |   /|\
  |   / \
========`,
}

// Render returns the drawing for wrongCount wrong guesses. Counts past
// the last stage clamp to the final drawing; negative counts clamp to
// the empty one.
func Render(wrongCount int) string {
	if wrongCount < 0 {
		wrongCount = 0
	}
	if wrongCount >= len(stages) {
		wrongCount = len(stages) - 1
	}
	return stages[wrongCount]
}

// Stages returns the number of distinct drawings.
func Stages() int {
	return len(stages)
}
