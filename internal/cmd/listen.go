package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/renato0307/hotline/internal/adapters/apiclient"
	adapternotify "github.com/renato0307/hotline/internal/adapters/notify"
	adaptersound "github.com/renato0307/hotline/internal/adapters/sound"
	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/dispatch"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/theme"
)

// ListenCmd connects to the realtime channel and plays sounds and shows
// notifications per the hook configuration
type ListenCmd struct {
	NoNativeNotifications bool   `help:"Always use the terminal alert instead of OS notifications"`
	Quiet                 bool   `help:"Do not print a line per event" short:"q"`
	Seed                  uint64 `help:"Seed for random sound selection (0 = time based)"`
}

// Run blocks until interrupted
func (l *ListenCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}

	native := !l.NoNativeNotifications
	if !l.NoNativeNotifications && cli.settings.NativeNotifications != nil {
		native = *cli.settings.NativeNotifications
	}

	seed := l.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	player := adaptersound.NewPlayer(config.GetSoundsDir())
	cache := apiclient.NewSoundCache(client, config.GetSoundCacheDir(), player)
	gate := dispatch.NewNotificationGate(adapternotify.NewDesktop(native), adapternotify.NewTerminalAlert(os.Stderr))
	engine := dispatch.NewEngine(client, cache, gate, dispatch.NewRandomPicker(seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "%s %s\n",
		theme.AppNameStyle.Render("hotline listen"),
		theme.MutedStyle.Render("connecting to "+client.WebSocketURL()+" (ctrl+c to stop)"))

	logging.Logger.Info("Listener starting", "server", client.BaseURL(), "seed", seed, "native_notifications", native)
	return client.Listen(ctx, func(ctx context.Context, msg domain.Message) {
		result := engine.Handle(ctx, msg)
		if !l.Quiet {
			l.print(msg, result)
		}
	}, apiclient.ListenOptions{
		OnConnect: func() {
			fmt.Fprintln(stdout, theme.SuccessStyle.Render("connected"))
		},
		OnDisconnect: func(err error, retryIn time.Duration) {
			fmt.Fprintf(stdout, "%s %s\n",
				theme.ErrorStyle.Render("disconnected"),
				theme.MutedStyle.Render(fmt.Sprintf("(%v), retrying in %s", err, retryIn.Round(100*time.Millisecond))))
		},
	})
}

func (l *ListenCmd) print(msg domain.Message, result dispatch.Result) {
	switch msg.Type {
	case domain.MessageClearLogs:
		fmt.Fprintln(stdout, theme.MutedStyle.Render("-- log cleared --"))
	case domain.MessageNewLog:
		if msg.Data == nil {
			return
		}
		line := logLine(*msg.Data)
		var effects []string
		if len(result.Sounds) > 0 {
			effects = append(effects, "♪ "+strings.Join(result.Sounds, ", "))
		}
		for _, n := range result.Notifications {
			effects = append(effects, "✉ "+string(n.Delivery))
		}
		if len(effects) > 0 {
			line += " " + theme.SubtitleStyle.Render(strings.Join(effects, " "))
		}
		fmt.Fprintln(stdout, line)
	}
}
