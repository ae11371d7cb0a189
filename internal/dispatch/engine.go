// Package dispatch turns realtime ledger events into sounds and
// notifications on a listener, according to the current hook configuration.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

const notAvailable = "N/A"

// Notification is one notification shown for an event
type Notification struct {
	Body     string
	Delivery Delivery
	Title    string
}

// Result lists what Dispatch did for an event
type Result struct {
	Notifications []Notification
	Sounds        []string
}

// Engine dispatches events of one listener session. The configuration is
// read from source on every event; if that fails the last good
// configuration is used.
type Engine struct {
	gate   *NotificationGate
	last   domain.HookConfig
	mu     sync.Mutex
	picker Picker
	player ports.SoundPlayer
	source ports.HookConfigSource
}

// NewEngine creates an engine
func NewEngine(
	source ports.HookConfigSource,
	player ports.SoundPlayer,
	gate *NotificationGate,
	picker Picker,
) *Engine {
	return &Engine{
		gate:   gate,
		picker: picker,
		player: player,
		source: source,
	}
}

// Handle routes a realtime message. Only newLog triggers effects.
func (e *Engine) Handle(ctx context.Context, msg domain.Message) Result {
	switch msg.Type {
	case domain.MessageNewLog:
		if msg.Data == nil {
			logging.Logger.Warn("newLog message without data")
			return Result{}
		}
		return e.Dispatch(ctx, *msg.Data)
	case domain.MessageClearLogs:
		logging.Logger.Debug("Logs cleared on server")
		return Result{}
	default:
		logging.Logger.Debug("Ignoring unknown message", "type", msg.Type)
		return Result{}
	}
}

// Dispatch runs every enabled entry of the event's hook type: one randomly
// picked sound among its non-empty slots, then a notification when the
// entry asks for one. A failing sound or notification is logged and the
// remaining entries still run.
func (e *Engine) Dispatch(ctx context.Context, entry domain.LogEntry) Result {
	var result Result

	cfg := e.config(ctx)
	for i, hookEntry := range cfg[entry.HookType] {
		if !hookEntry.Enabled {
			continue
		}

		if sounds := hookEntry.AvailableSounds(); len(sounds) > 0 {
			sound := sounds[e.picker.Pick(len(sounds))]
			if err := e.player.Play(ctx, sound); err != nil {
				logging.Logger.Warn("Failed to play sound",
					"hook_type", entry.HookType,
					"entry", i,
					"sound", sound,
					"error", err,
				)
			} else {
				result.Sounds = append(result.Sounds, sound)
			}
		}

		if hookEntry.Notifications {
			title, body := NotificationText(entry)
			delivery, err := e.gate.Show(ctx, title, body)
			if err != nil {
				logging.Logger.Warn("Failed to show notification", "hook_type", entry.HookType, "entry", i, "error", err)
				continue
			}
			result.Notifications = append(result.Notifications, Notification{
				Body:     body,
				Delivery: delivery,
				Title:    title,
			})
		}
	}

	logging.Logger.Debug("Event dispatched",
		"id", entry.ID,
		"hook_type", entry.HookType,
		"sounds", len(result.Sounds),
		"notifications", len(result.Notifications),
	)
	return result
}

// NotificationText renders the title and body shown for an event
func NotificationText(entry domain.LogEntry) (string, string) {
	title := fmt.Sprintf("Hotline: %s", entry.HookType)
	body := fmt.Sprintf("Tool: %s\nMessage: %s", entry.ToolNameOr(notAvailable), entry.MessageOr(notAvailable))
	return title, body
}

func (e *Engine) config(ctx context.Context) domain.HookConfig {
	cfg, err := e.source.HookConfig(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		logging.Logger.Warn("Failed to refresh hook config, using last known", "error", err)
		return e.last
	}
	e.last = cfg
	return cfg
}
