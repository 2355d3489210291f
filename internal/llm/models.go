package llm

// modelAliases maps the short names accepted in config to model IDs.
var modelAliases = map[string]map[string]string{
	BackendAnthropic: {
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-5-20250929",
	},
	BackendOpenAI: {
		"gpt-mini": "gpt-4o-mini",
		"gpt":      "gpt-4.1",
	},
	BackendGemini: {
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.5-pro",
	},
}

// resolveModel maps an alias to its model ID. Anything else is taken to be
// a model ID already.
func resolveModel(backend, name string) string {
	if id, ok := modelAliases[backend][name]; ok {
		return id
	}
	return name
}
