package ai

// Provider names accepted by configuration.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default model identifiers used when configuration leaves the model blank.
const (
	DefaultGeminiModel = "gemini-3-flash-preview"
	DefaultOpenAIModel = "gpt-4o-mini"
)
