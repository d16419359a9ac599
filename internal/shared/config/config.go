package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is built once at startup and shared read-only afterwards.
type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// LLM
	LLMProvider    string
	GeminiKey      string
	OpenAIKey      string
	GroqKey        string
	DeepSeekKey    string
	ClaudeKey      string
	PrimaryModel   string
	ExtraModels    []string
	LLMTemperature float32
	LLMMaxTokens   int
}

// fallback models tried after the primary one, per provider
var providerFallbackModels = map[string][]string{
	"gemini":   {"gemini-2.0-flash", "gemini-1.5-flash-8b", "gemini-1.5-pro"},
	"openai":   {"gpt-4o-mini", "gpt-4o"},
	"groq":     {"llama-3.1-8b-instant", "llama-3.3-70b-versatile"},
	"deepseek": {"deepseek-chat"},
	"claude":   {"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"},
}

var providerDefaultModels = map[string]string{
	"gemini":   "gemini-2.5-flash",
	"openai":   "gpt-4o-mini",
	"groq":     "llama-3.1-8b-instant",
	"deepseek": "deepseek-chat",
	"claude":   "claude-3-5-sonnet-20241022",
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		LLMProvider:  strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))),
		GeminiKey:    firstEnv("GEMINI_API_KEY", "GOOGLE_GENAI_API_KEY"),
		OpenAIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GroqKey:      strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		DeepSeekKey:  strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		ClaudeKey:    strings.TrimSpace(os.Getenv("CLAUDE_API_KEY")),
		PrimaryModel: firstEnv("GOOGLE_GENAI_MODEL", "GENAI_MODEL", "LLM_MODEL"),
		ExtraModels:  splitList(os.Getenv("GOOGLE_GENAI_MODELS")),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8788"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.PrimaryModel == "" {
		cfg.PrimaryModel = providerDefaultModels[cfg.LLMProvider]
	}

	cfg.LLMTemperature = 0.7
	if v, err := strconv.ParseFloat(os.Getenv("LLM_TEMPERATURE"), 32); err == nil {
		cfg.LLMTemperature = float32(v)
	}
	cfg.LLMMaxTokens = 1024
	if v, err := strconv.Atoi(os.Getenv("LLM_MAX_TOKENS")); err == nil && v > 0 {
		cfg.LLMMaxTokens = v
	}

	return cfg
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	switch c.LLMProvider {
	case "openai":
		return c.OpenAIKey
	case "groq":
		return c.GroqKey
	case "deepseek":
		return c.DeepSeekKey
	case "claude":
		return c.ClaudeKey
	default:
		return c.GeminiKey
	}
}

// ModelCandidates lists model ids in the order they should be tried:
// explicitly configured extras first, then the primary, then provider fallbacks.
func (c *Config) ModelCandidates() []string {
	all := make([]string, 0, len(c.ExtraModels)+4)
	all = append(all, c.ExtraModels...)
	if c.PrimaryModel != "" {
		all = append(all, c.PrimaryModel)
	}
	all = append(all, providerFallbackModels[c.LLMProvider]...)

	seen := make(map[string]bool, len(all))
	candidates := make([]string, 0, len(all))
	for _, m := range all {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		candidates = append(candidates, m)
	}
	return candidates
}

// MaskedKey is safe to print: first 4 chars and length, or "absent".
func (c *Config) MaskedKey() string {
	k := c.APIKey()
	if k == "" {
		return "absent"
	}
	if len(k) <= 4 {
		return "***"
	}
	return k[:4] + "... (len:" + strconv.Itoa(len(k)) + ")"
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
