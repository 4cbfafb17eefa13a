package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dmoose/multimacs/internal/command"
	"github.com/dmoose/multimacs/internal/config"
	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/keybind"
	"github.com/dmoose/multimacs/internal/logger"
)

// promptLabels names the commands whose string argument is read from
// the echo area before execution.
var promptLabels = map[string]string{
	"find-file":        "Find file: ",
	"switch-to-buffer": "Switch to buffer: ",
	"kill-buffer":      "Kill buffer (empty for current): ",
	"write-file":       "Write file: ",
}

// App runs the interactive editor: one screen, one event loop, one
// command executed to completion per key event.
type App struct {
	screen   tcell.Screen
	state    *editor.State
	engine   *command.Engine
	resolver *keybind.Resolver
	tabWidth int

	top int // first visible buffer line
}

// NewApp creates the application around an allocated screen.
func NewApp(st *editor.State, eng *command.Engine, res *keybind.Resolver, cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &App{
		screen:   screen,
		state:    st,
		engine:   eng,
		resolver: res,
		tabWidth: cfg.Editor.TabWidth,
	}, nil
}

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	logger.Info("editor started")
	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				logger.Info("editor quit")
				return nil
			}
		}
	}
}

// handleKey feeds one key event through the resolver and engine.
// Returns true when the editor should exit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	chord := ChordOf(ev)
	if chord == "" {
		return false
	}

	b := a.resolver.Feed(chord)
	switch b.Kind {
	case keybind.KindPending:
		a.state.SetMessage("%s-", b.Sequence)
		return false
	case keybind.KindUnbound:
		a.state.SetMessage("%s is undefined", b.Sequence)
		return false
	}

	if b.Command == keybind.QuitCommand {
		return true
	}

	arg := b.Arg
	if label, ok := promptLabels[b.Command]; ok {
		text, accepted := a.prompt(label)
		if !accepted {
			a.state.SetMessage("Quit")
			return false
		}
		arg = text
	}

	a.state.ClearMessage()
	ctx := command.Context{PrefixArg: b.PrefixArg, Arg: arg}
	res := a.engine.Execute(b.Command, ctx)
	if res.IsError() {
		logger.Error("command failed", "command", b.Command, "err", res.Err)
	} else {
		logger.Debug("command", "command", b.Command, "status", res.Status.String())
	}
	return false
}

// prompt reads a line of input in the echo area. Returns false when
// cancelled with C-g or ESC.
func (a *App) prompt(label string) (string, bool) {
	input := []rune{}
	for {
		a.drawEcho(label + string(input))
		a.screen.Show()

		ev, ok := a.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			return string(input), true
		case tcell.KeyEscape, tcell.KeyCtrlG:
			return "", false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case tcell.KeyRune:
			input = append(input, ev.Rune())
		}
	}
}
