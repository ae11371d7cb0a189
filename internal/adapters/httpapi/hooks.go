package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
)

func (c *controller) handleGetHooks(w http.ResponseWriter, r *http.Request) {
	target, err := domain.ParseConfigTarget(r.URL.Query().Get("target"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "target must be global or project")
		return
	}

	doc, err := c.deps.HookConfig.ConsumerHooks(r.Context(), target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, HooksResponse{Hooks: doc, Target: target})
}

func (c *controller) handlePostHooks(w http.ResponseWriter, r *http.Request) {
	var req HooksRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	target, err := domain.ParseConfigTarget(req.Target)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "target must be global or project")
		return
	}

	path, err := c.deps.HookConfig.WriteConsumerHooks(r.Context(), target, req.Hooks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, HooksResponse{Hooks: req.Hooks, Path: path, Success: true, Target: target})
}

func (c *controller) handlePostHooksApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, err)
			return
		}
	}

	target, err := domain.ParseConfigTarget(req.Target)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "target must be global or project")
		return
	}

	result, err := c.deps.HookConfig.Apply(r.Context(), target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, HooksResponse{Hooks: result.Document, Path: result.Path, Success: true, Target: result.Target})
}

func (c *controller) handleGetHookUIConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := c.deps.HookConfig.Load(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	c.writeConfig(w, r, cfg)
}

func (c *controller) handlePostHookUIConfig(w http.ResponseWriter, r *http.Request) {
	if err := requireJSON(r); err != nil {
		writeError(w, r, err)
		return
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "request body too large")
		return
	}

	cfg, err := c.deps.HookConfig.Save(r.Context(), raw)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c.writeConfig(w, r, cfg)
}

// writeConfig emits the canonical form, with empty sequences as [] not null
func (c *controller) writeConfig(w http.ResponseWriter, r *http.Request, cfg domain.HookConfig) {
	data, err := hookconfig.Marshal(cfg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (c *controller) handlePostHookEntry(w http.ResponseWriter, r *http.Request) {
	hookType, err := domain.ParseHookType(r.PathValue("hookType"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := c.deps.HookConfig.AddEntry(r.Context(), hookType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, EntriesResponse{Entries: entries, HookType: hookType})
}

func (c *controller) handleDeleteHookEntry(w http.ResponseWriter, r *http.Request) {
	hookType, index, err := entryPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := c.deps.HookConfig.RemoveEntry(r.Context(), hookType, index)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, EntriesResponse{Entries: entries, HookType: hookType})
}

func (c *controller) handlePatchHookEntry(w http.ResponseWriter, r *http.Request) {
	hookType, index, err := entryPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req FieldUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	field, err := hookconfig.ParseField(req.Field)
	if err != nil {
		writeError(w, r, err)
		return
	}
	value, err := hookconfig.DecodeFieldValue(field, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := c.deps.HookConfig.UpdateField(r.Context(), hookType, index, field, value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, EntriesResponse{Entries: entries, HookType: hookType})
}

func entryPath(r *http.Request) (domain.HookType, int, error) {
	hookType, err := domain.ParseHookType(r.PathValue("hookType"))
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return "", 0, fmt.Errorf("%w: index must be an integer", domain.ErrInvalidField)
	}
	return hookType, index, nil
}
