package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brandonayton/hangman/game"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("options need arguments")
	errNoGame            = errors.New("no active round; start one with `new`")
	errUnknownCommand    = errors.New("unknown command; type `help` for a list")
)

// extractFields splits a line into a command, positional args, and
// -opt value options.
func extractFields(line string) (*shellcmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	lastWasOption := false
	lastOption := ""
	for _, token := range fields[1:] {
		if lastWasOption {
			options[lastOption] = token
			lastWasOption = false
			continue
		}
		if strings.HasPrefix(token, "-") {
			lastWasOption = true
			lastOption = strings.TrimPrefix(token, "-")
			continue
		}
		args = append(args, token)
	}
	if lastWasOption {
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (c *shellcmd) boolOption(key string) bool {
	return strings.ToLower(c.options[key]) == "true"
}

func (sc *ShellController) executeCommand(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "guess":
		return sc.guess(cmd)
	case "hint":
		return sc.hint(cmd)
	case "show":
		return sc.show(cmd)
	case "letters":
		return sc.letters(cmd)
	case "reveal":
		return sc.reveal(cmd)
	case "set":
		return sc.set(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "help":
		return sc.help(cmd)
	default:
		// A bare single character is a guess. Anything else single-char
		// goes through the same path so that "5" gets the invalid-input
		// error rather than "unknown command".
		if utf8.RuneCountInString(cmd.cmd) == 1 && len(cmd.args) == 0 {
			r, _ := utf8.DecodeRuneInString(cmd.cmd)
			return sc.applyGuess(r)
		}
		return nil, errUnknownCommand
	}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	entry, err := sc.bank.Pick()
	if err != nil {
		return nil, err
	}
	g, err := game.New(entry, sc.maxWrong)
	if err != nil {
		return nil, err
	}
	g.SetPlaceholder(sc.placeholder)
	sc.game = g
	return msg("A new word has been chosen.\n" + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) guess(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 || utf8.RuneCountInString(cmd.args[0]) != 1 {
		return nil, game.ErrInvalidInput
	}
	r, _ := utf8.DecodeRuneInString(cmd.args[0])
	return sc.applyGuess(r)
}

func (sc *ShellController) applyGuess(letter rune) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	outcome, err := sc.game.Guess(letter)
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			return nil, fmt.Errorf("%w; start another with `new`", err)
		}
		return nil, err
	}
	upper := unicode.ToUpper(letter)
	var sb strings.Builder
	switch outcome {
	case game.Hit:
		fmt.Fprintf(&sb, "Good guess! '%c' is in the word.\n", upper)
	case game.Miss:
		fmt.Fprintf(&sb, "Sorry, '%c' is not in the word.\n", upper)
	case game.AlreadyGuessed:
		fmt.Fprintf(&sb, "You already guessed '%c'! Try a different letter.\n", upper)
	}
	sb.WriteString(sc.boardOrBanner())
	return msg(sb.String()), nil
}

// boardOrBanner shows the board mid-round and the final banner once
// the round is over.
func (sc *ShellController) boardOrBanner() string {
	if sc.game.Status() == game.InProgress {
		return sc.game.ToDisplayText()
	}
	return sc.finalBanner()
}

func (sc *ShellController) finalBanner() string {
	g := sc.game
	divider := strings.Repeat("=", 40)
	var sb strings.Builder
	sb.WriteString(divider + "\n")
	if g.Status() == game.Won {
		sb.WriteString("YOU WIN!\n")
		fmt.Fprintf(&sb, "You guessed: %s\n", g.Secret())
		fmt.Fprintf(&sb, "With %d wrong guesses remaining!\n", g.MaxWrong()-g.WrongCount())
	} else {
		sb.WriteString("GAME OVER!\n")
		fmt.Fprintf(&sb, "The word was: %s\n", g.Secret())
		if g.Hint() != "" {
			fmt.Fprintf(&sb, "About %s: %s\n", g.Secret(), g.Hint())
		}
	}
	sb.WriteString(divider + "\n")
	sb.WriteString("Type `new` for another round.")
	return sb.String()
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if cmd.boolOption("reveal") {
		letter, err := sc.game.RevealHint()
		if err != nil {
			return nil, err
		}
		return msg(fmt.Sprintf("Try the letter '%c'.\n", letter) + sc.boardOrBanner()), nil
	}
	if sc.game.Hint() == "" {
		return msg("No hint available for this word."), nil
	}
	return msg("Hint: " + sc.game.Hint()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.boardOrBanner()), nil
}

func (sc *ShellController) letters(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	guessed := sc.game.GuessedLetters()
	if len(guessed) == 0 {
		return msg("No letters guessed yet."), nil
	}
	parts := make([]string, len(guessed))
	for i, r := range guessed {
		parts[i] = string(r)
	}
	return msg("Guessed letters: " + strings.Join(parts, " ")), nil
}

func (sc *ShellController) reveal(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.game.Status() == game.InProgress {
		sc.game.Concede()
	}
	return msg(sc.finalBanner()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.settingsDisplay()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		switch opt {
		case "max-wrong":
			return msg(strconv.Itoa(sc.maxWrong)), nil
		case "placeholder":
			return msg(string(sc.placeholder)), nil
		}
		return nil, fmt.Errorf("no option named %q", opt)
	}
	value := cmd.args[1]
	switch opt {
	case "max-wrong":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, errors.New("max-wrong must be positive")
		}
		sc.maxWrong = n
	case "placeholder":
		if utf8.RuneCountInString(value) != 1 {
			return nil, errors.New("placeholder must be a single character")
		}
		sc.placeholder, _ = utf8.DecodeRuneInString(value)
	default:
		return nil, fmt.Errorf("no option named %q", opt)
	}
	return msg("set " + opt + " to " + value + " (applies to the next round)"), nil
}

func (sc *ShellController) settingsDisplay() string {
	return fmt.Sprintf("max-wrong: %d\nplaceholder: %c", sc.maxWrong, sc.placeholder)
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key := cmd.args[0]
	value := cmd.args[1]
	sc.config.Set(key, value)
	if err := sc.config.Write(); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
