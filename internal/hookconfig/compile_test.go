package hookconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
)

func testCommand(hookType domain.HookType) string {
	return "log " + string(hookType)
}

func TestCompile_StopHasNoMatcher(t *testing.T) {
	cfg := domain.HookConfig{
		domain.HookStop: {{Enabled: true, Sounds: []string{"s.wav", "", ""}, Matcher: "ignored"}},
	}

	doc := Compile(cfg, CompileOptions{Command: testCommand})

	require.Len(t, doc, 1)
	require.Len(t, doc[domain.HookStop], 1)
	rule := doc[domain.HookStop][0]
	assert.Empty(t, rule.Matcher)
	assert.Equal(t, []domain.CommandHook{{Type: "command", Command: "log Stop", Timeout: 60}}, rule.Hooks)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "matcher")
}

func TestCompile_OmitsTypesWithoutEnabledEntries(t *testing.T) {
	cfg := domain.HookConfig{
		domain.HookStop:         {{Enabled: false}, {Enabled: false}},
		domain.HookNotification: {},
		domain.HookPreCompact:   {{Enabled: true, TimeoutSeconds: 15}},
	}

	doc := Compile(cfg, CompileOptions{Command: testCommand})

	assert.NotContains(t, doc, domain.HookStop)
	assert.NotContains(t, doc, domain.HookNotification)
	require.Contains(t, doc, domain.HookPreCompact)
	assert.Equal(t, 15, doc[domain.HookPreCompact][0].Hooks[0].Timeout)
}

func TestCompile_OneRulePerEnabledEntryWithMatchers(t *testing.T) {
	cfg := domain.HookConfig{
		domain.HookPreToolUse: {
			{Enabled: true, Matcher: "Bash"},
			{Enabled: false, Matcher: "Skipped"},
			{Enabled: true, Matcher: ""},
			{Enabled: true, Matcher: "Edit|Write"},
		},
	}

	doc := Compile(cfg, CompileOptions{Command: testCommand})

	rules := doc[domain.HookPreToolUse]
	require.Len(t, rules, 3)
	assert.Equal(t, "Bash", rules[0].Matcher)
	assert.Empty(t, rules[1].Matcher)
	assert.Equal(t, "Edit|Write", rules[2].Matcher)
	for _, rule := range rules {
		require.Len(t, rule.Hooks, 1)
		assert.Equal(t, "log PreToolUse", rule.Hooks[0].Command)
	}
}

func TestCompile_EmptyConfig(t *testing.T) {
	assert.Empty(t, Compile(domain.HookConfig{}, CompileOptions{}))
}

func TestDefaultCommand(t *testing.T) {
	cmd := DefaultCommand("/usr/local/bin/hotline", "http://localhost:3001")
	assert.Equal(t, "/usr/local/bin/hotline log --server http://localhost:3001 --hook-type Stop", cmd(domain.HookStop))

	cmd = DefaultCommand("/Applications/My Tools/hotline", "")
	assert.Equal(t, "'/Applications/My Tools/hotline' log --hook-type PreCompact", cmd(domain.HookPreCompact))
}
