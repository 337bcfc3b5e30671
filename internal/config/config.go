package config

// Config holds all application configuration, organized into logical
// groups.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Task       TaskConfig       `mapstructure:"task"`
	Store      StoreConfig      `mapstructure:"store"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Summarizer SummarizerConfig `mapstructure:"summarizer"`
	OCR        OCRConfig        `mapstructure:"ocr"`
	Callback   CallbackConfig   `mapstructure:"callback"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// TaskConfig contains the background runner settings.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"required,gte=1"`
	QueueSize   int `mapstructure:"queue_size"   validate:"required,gte=1"`
}

// StoreConfig selects the task record backend.
type StoreConfig struct {
	Driver     string `mapstructure:"driver"      validate:"required,oneof=memory sqlite"`
	SQLitePath string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
}

// EmbeddingConfig points at the sentence-embedding endpoint. When the
// base URL is empty the service falls back to the local TF-IDF
// vectorizer.
type EmbeddingConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// SummarizerConfig contains the Gemini summarization settings. An
// empty API key disables the abstractive path.
type SummarizerConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"`
}

// OCRConfig points at the OCR engine sidecar. An empty base URL marks
// the whole OCR family unavailable.
type OCRConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	Language string `mapstructure:"language"`
	// GlyphFix enables the lossy pipe-to-I and zero-to-O substitutions
	// during text cleanup.
	GlyphFix bool `mapstructure:"glyph_fix"`
}

// CallbackConfig bounds webhook delivery.
type CallbackConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gte=1"`
}
