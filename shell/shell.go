// Package shell is the interactive front end: a readline loop that
// parses guesses and commands and applies them to the current round.
package shell

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/brandonayton/hangman/config"
	"github.com/brandonayton/hangman/game"
	"github.com/brandonayton/hangman/wordbank"
)

const welcomeText = `Welcome to Programming Language Hangman!

HOW TO PLAY:
- Type ` + "`new`" + ` to start a round, then guess one letter at a time
- Wrong guesses draw the gallows; run out and the round is lost
- After 3 wrong guesses the word's hint appears
- Type ` + "`help`" + ` for all commands, ` + "`exit`" + ` to quit
`

type ShellController struct {
	l *readline.Instance

	config *config.Config
	bank   *wordbank.Bank
	game   *game.Game

	maxWrong    int
	placeholder rune
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, bank *wordbank.Bank) *ShellController {
	sc := &ShellController{
		config:      cfg,
		bank:        bank,
		maxWrong:    cfg.GetInt("max-wrong"),
		placeholder: '_',
	}
	if p := cfg.GetString("placeholder"); p != "" {
		sc.placeholder = []rune(p)[0]
	}
	if sc.maxWrong <= 0 {
		sc.maxWrong = game.DefaultMaxWrong
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mhangman>\033[0m ",
		HistoryFile:     "/tmp/hangman_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Loop reads lines until quit. Ctrl-C on an empty line, EOF, and the
// exit/bye commands all send SIGINT and exit with status 0.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(welcomeText)

readlineLoop:
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "bye" || line == "exit":
			sig <- syscall.SIGINT
			break readlineLoop
		case line == "":
		default:
			resp, err := sc.executeCommand(line)
			switch {
			case err != nil:
				sc.showError(err)
			case resp != nil:
				sc.showMessage(resp.message)
			default:
				log.Debug().Msgf("you said: %v", strconv.Quote(line))
			}
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}

// Execute runs a single command line, for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	resp, err := sc.executeCommand(line)
	switch {
	case errors.Is(err, errNoData):
	case err != nil:
		sc.showError(err)
	case resp != nil:
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Cleanup() {
	// readline closes in Loop/Execute; nothing else holds resources.
}
