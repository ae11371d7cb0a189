package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// TestHookMessage is the message of entries recorded by RecordTest
const TestHookMessage = "Test hook triggered from Hotline"

// TestHookSessionID marks entries recorded by RecordTest
const TestHookSessionID = "hotline-test"

var csvHeader = []string{"Timestamp", "Hook Type", "Tool Name", "Session ID", "Message"}

// LedgerService records hook triggers and announces them to listeners.
// A record is committed before it is broadcast; a failed broadcast never
// rolls the record back.
type LedgerService struct {
	ledger    ports.Ledger
	publisher ports.EventPublisher
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledger ports.Ledger, publisher ports.EventPublisher) *LedgerService {
	return &LedgerService{
		ledger:    ledger,
		publisher: publisher,
	}
}

// Record stores a hook trigger and broadcasts the committed entry
func (s *LedgerService) Record(ctx context.Context, input domain.LogInput) (domain.LogEntry, error) {
	if !input.HookType.Valid() {
		return domain.LogEntry{}, fmt.Errorf("%w: %q", domain.ErrUnknownHookType, input.HookType)
	}

	entry, err := s.ledger.Insert(ctx, input)
	if err != nil {
		logging.Logger.Error("Failed to record hook trigger", "hook_type", input.HookType, "error", err)
		return domain.LogEntry{}, wrapStorage(err)
	}

	logging.Logger.Info("Hook trigger recorded",
		"id", entry.ID,
		"hook_type", entry.HookType,
		"session", entry.SessionID,
		"tool", entry.ToolNameOr(""),
	)

	s.publisher.Publish(domain.NewLogMessage(entry))
	return entry, nil
}

// RecordTest records a Notification trigger so listeners can check their
// sound and notification setup end to end
func (s *LedgerService) RecordTest(ctx context.Context) (domain.LogEntry, error) {
	message := TestHookMessage
	return s.Record(ctx, domain.LogInput{
		HookType:  domain.HookNotification,
		Message:   &message,
		SessionID: TestHookSessionID,
	})
}

// Get returns a single entry
func (s *LedgerService) Get(ctx context.Context, id int64) (domain.LogEntry, error) {
	entry, err := s.ledger.Get(ctx, id)
	if err != nil {
		return domain.LogEntry{}, wrapStorage(err)
	}
	return entry, nil
}

// Query returns entries matching filter, newest first
func (s *LedgerService) Query(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	if filter.HookType != "" && !filter.HookType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownHookType, filter.HookType)
	}

	entries, err := s.ledger.Query(ctx, filter.Normalized())
	if err != nil {
		logging.Logger.Error("Failed to query ledger", "error", err)
		return nil, wrapStorage(err)
	}
	return entries, nil
}

// Count returns how many entries match filter
func (s *LedgerService) Count(ctx context.Context, filter domain.LogFilter) (int64, error) {
	total, err := s.ledger.Count(ctx, filter)
	if err != nil {
		return 0, wrapStorage(err)
	}
	return total, nil
}

// Clear deletes every entry and tells listeners to drop their copies
func (s *LedgerService) Clear(ctx context.Context) (int64, error) {
	deleted, err := s.ledger.ClearAll(ctx)
	if err != nil {
		logging.Logger.Error("Failed to clear ledger", "error", err)
		return 0, wrapStorage(err)
	}

	s.publisher.Publish(domain.ClearLogsMessage())
	return deleted, nil
}

// ExportCSV writes every entry matching filter as CSV, newest first. Limit
// and offset in filter are ignored.
func (s *LedgerService) ExportCSV(ctx context.Context, filter domain.LogFilter, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}

	filter.Limit = domain.MaxLogLimit
	filter.Offset = 0

	written := 0
	for {
		page, err := s.Query(ctx, filter)
		if err != nil {
			return written, err
		}

		for _, entry := range page {
			record := []string{
				entry.Timestamp.UTC().Format(time.RFC3339),
				string(entry.HookType),
				entry.ToolNameOr(""),
				entry.SessionID,
				entry.MessageOr(""),
			}
			if err := cw.Write(record); err != nil {
				return written, err
			}
			written++
		}

		if len(page) < filter.Limit {
			break
		}
		filter.Offset += len(page)
	}

	cw.Flush()
	return written, cw.Error()
}
