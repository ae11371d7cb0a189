package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
	portsmocks "github.com/renato0307/hotline/internal/ports/mocks"
)

func strPtr(s string) *string { return &s }

func TestRecord_InsertsThenPublishes(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	input := domain.LogInput{HookType: domain.HookPreToolUse, SessionID: "s1", ToolName: strPtr("Bash")}
	committed := domain.LogEntry{ID: 5, HookType: domain.HookPreToolUse, SessionID: "s1", ToolName: strPtr("Bash"), Timestamp: time.Now().UTC()}

	ledger.EXPECT().Insert(mock.Anything, input).Return(committed, nil)
	publisher.EXPECT().Publish(domain.NewLogMessage(committed)).Return()

	service := NewLedgerService(ledger, publisher)
	entry, err := service.Record(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, committed, entry)
}

func TestRecord_UnknownHookTypeNeverReachesLedger(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	service := NewLedgerService(ledger, publisher)
	_, err := service.Record(context.Background(), domain.LogInput{HookType: "Bogus"})

	assert.ErrorIs(t, err, domain.ErrUnknownHookType)
}

func TestRecord_InsertFailureDoesNotPublish(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	ledger.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.LogEntry{}, errors.New("locked"))

	service := NewLedgerService(ledger, publisher)
	_, err := service.Record(context.Background(), domain.LogInput{HookType: domain.HookStop})

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestRecordTest_RecordsNotification(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	ledger.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(in domain.LogInput) bool {
		return in.HookType == domain.HookNotification && in.Message != nil && *in.Message == TestHookMessage
	})).Return(domain.LogEntry{ID: 1, HookType: domain.HookNotification}, nil)
	publisher.EXPECT().Publish(mock.Anything).Return()

	service := NewLedgerService(ledger, publisher)
	entry, err := service.RecordTest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.HookNotification, entry.HookType)
}

func TestClear_PublishesClearLogs(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	ledger.EXPECT().ClearAll(mock.Anything).Return(int64(12), nil)
	publisher.EXPECT().Publish(domain.ClearLogsMessage()).Return()

	service := NewLedgerService(ledger, publisher)
	deleted, err := service.Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}

func TestQuery_NormalizesFilter(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	ledger.EXPECT().Query(mock.Anything, domain.LogFilter{Keyword: "npm", Limit: domain.MaxLogLimit}).
		Return([]domain.LogEntry{}, nil)

	service := NewLedgerService(ledger, publisher)
	entries, err := service.Query(context.Background(), domain.LogFilter{Keyword: "npm", Limit: 5000, Offset: -3})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportCSV(t *testing.T) {
	ledger := portsmocks.NewMockLedger(t)
	publisher := portsmocks.NewMockEventPublisher(t)

	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	ledger.EXPECT().Query(mock.Anything, domain.LogFilter{HookType: domain.HookStop, Limit: domain.MaxLogLimit}).
		Return([]domain.LogEntry{
			{ID: 2, Timestamp: ts, HookType: domain.HookStop, SessionID: "s1", Message: strPtr("done, really")},
			{ID: 1, Timestamp: ts, HookType: domain.HookStop, SessionID: "s1", ToolName: strPtr("Bash")},
		}, nil)

	service := NewLedgerService(ledger, publisher)
	var buf bytes.Buffer
	n, err := service.ExportCSV(context.Background(), domain.LogFilter{HookType: domain.HookStop, Limit: 3, Offset: 9}, &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Timestamp", "Hook Type", "Tool Name", "Session ID", "Message"}, records[0])
	assert.Equal(t, []string{"2026-03-04T05:06:07Z", "Stop", "", "s1", "done, really"}, records[1])
	assert.Equal(t, []string{"2026-03-04T05:06:07Z", "Stop", "Bash", "s1", ""}, records[2])
}
