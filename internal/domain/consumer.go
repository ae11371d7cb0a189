package domain

// CommandHook is a single side-effect the agent runs when a rule fires
type CommandHook struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// ConsumerRule is one rule object inside the agent's settings.json "hooks" key
type ConsumerRule struct {
	Hooks   []CommandHook `json:"hooks"`
	Matcher string        `json:"matcher,omitempty"`
}

// ConsumerDocument is the "hooks" value of the agent's settings.json
type ConsumerDocument map[HookType][]ConsumerRule

// ConfigTarget selects which settings.json receives the consumer document
type ConfigTarget string

const (
	TargetGlobal  ConfigTarget = "global"
	TargetProject ConfigTarget = "project"
)

// ParseConfigTarget maps "" to TargetGlobal and rejects unknown targets
func ParseConfigTarget(s string) (ConfigTarget, error) {
	switch ConfigTarget(s) {
	case "", TargetGlobal:
		return TargetGlobal, nil
	case TargetProject:
		return TargetProject, nil
	default:
		return "", ErrInvalidField
	}
}
