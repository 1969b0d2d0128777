package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/autonav/pkg/autonav/router"
)

// DefaultScript reproduces the classic example: the main page prepares a
// sub page, hands it a message, opens it, and the sub page goes back.
const DefaultScript = "PrepareSub,Open,Back"

// ErrEmptyScript is returned when the script names no actions.
var ErrEmptyScript = errors.New("script contains no actions")

// RunCommand holds the flags of the run command.
type RunCommand struct {
	script    string
	keepGoing bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a script of navigation actions",
		Long: `Execute a comma separated script of action names. Each action is
requested from the screen on top of the stack, like a button press on
that screen would.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.script, "script", "s", DefaultScript, "Comma separated action names")
	cmd.Flags().BoolVar(&rc.keepGoing, "keep-going", false, "Continue after a failed action")

	return cmd
}

func parseScript(script string) []string {
	var actions []string
	for _, name := range strings.Split(script, ",") {
		if name = strings.TrimSpace(name); name != "" {
			actions = append(actions, name)
		}
	}
	return actions
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	actions := parseScript(rc.script)
	if len(actions) == 0 {
		return ErrEmptyScript
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loop := make(chan error, 1)
	go func() { loop <- a.router.Run(ctx) }()

	var failed error
	for _, action := range actions {
		if err := a.step(ctx, action); err != nil {
			a.out.fail("ActionFailed", map[string]any{"Action": action, "Error": err})
			if !rc.keepGoing {
				failed = err
				break
			}
		}
	}

	if reply, err := a.router.Post(ctx, router.ActionExit, nil); err == nil {
		<-reply
	}
	if err := <-loop; err != nil {
		return err
	}

	if err := a.printMetrics(); err != nil {
		return err
	}
	return failed
}

// step posts action from the top screen and reports the result. A screen
// staged by the action receives the demo message before it is opened.
func (a *app) step(ctx context.Context, action string) error {
	from := a.host.Peek()

	reply, err := a.router.Post(ctx, action, from)
	if err != nil {
		return err
	}
	result := <-reply
	if result.Err != nil {
		return result.Err
	}

	info := result.Info
	a.out.say("ActionExecuted", map[string]any{
		"Action": action,
		"Popped": kinds(info.PoppedScreens()),
		"Pushed": kinds(info.PushedScreens()),
	})

	message := a.out.text("BufferedMessage", nil)
	for _, staged := range a.router.Engine().BufferedScreens(a.host.Context(from)) {
		if p, ok := staged.(*page); ok {
			p.controller.message = message
		}
	}

	for _, pushed := range info.PushedScreens() {
		if p, ok := pushed.(*page); ok && p.controller.message != "" {
			a.out.say("ScreenMessage", map[string]any{"Screen": p.kind, "Message": p.controller.message})
		}
	}

	a.out.say("StackState", map[string]any{"Screens": kinds(a.host.Screens())})
	return nil
}
