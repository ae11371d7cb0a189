package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/renato0307/hotline/internal/domain"
)

func (c *controller) handleGetLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := c.deps.Ledger.Query(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, entries)
}

func (c *controller) handleGetLogsExport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	name := fmt.Sprintf("hotline-logs-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))

	// Headers are already out, so failures can only be logged
	if _, err := c.deps.Ledger.ExportCSV(r.Context(), filter, w); err != nil {
		logError(r, "log export failed", "error", err)
	}
}

func (c *controller) handleGetLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	entry, err := c.deps.Ledger.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, entry)
}

func (c *controller) handlePostLog(w http.ResponseWriter, r *http.Request) {
	var req LogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hookType, err := domain.ParseHookType(req.HookType)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := c.deps.Ledger.Record(r.Context(), domain.LogInput{
		HookType:  hookType,
		Message:   req.Message,
		SessionID: req.SessionID,
		ToolName:  req.ToolName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, LogResponse{ID: entry.ID, Log: entry, Success: true})
}

func (c *controller) handleDeleteLogs(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.deps.Ledger.Clear(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, ClearResponse{Deleted: deleted, Success: true})
}

func (c *controller) handlePostTestHook(w http.ResponseWriter, r *http.Request) {
	entry, err := c.deps.Ledger.RecordTest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, LogResponse{ID: entry.ID, Log: entry, Success: true})
}

// parseLogFilter reads hookType, sessionId, keyword, limit and offset
func parseLogFilter(q url.Values) (domain.LogFilter, error) {
	filter := domain.LogFilter{
		Keyword:   q.Get("keyword"),
		SessionID: q.Get("sessionId"),
	}

	if v := q.Get("hookType"); v != "" {
		hookType, err := domain.ParseHookType(v)
		if err != nil {
			return filter, err
		}
		filter.HookType = hookType
	}

	var err error
	if filter.Limit, err = intParam(q, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = intParam(q, "offset"); err != nil {
		return filter, err
	}
	return filter.Normalized(), nil
}

func intParam(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidField, key)
	}
	return n, nil
}
