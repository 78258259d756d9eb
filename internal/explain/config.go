package explain

// Fixed replies shown in place of an explanation.
const (
	MsgCredentialMissing = "No AI provider is configured. Set GEMINI_API_KEY (or another provider key) and restart to enable explanations."
	MsgUnavailable       = "Sorry, the math tutor is offline right now. Check your API key and network connection."
	MsgEmpty             = "No explanation could be generated for this angle."
)

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig keeps replies short.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.4,
	}
}
