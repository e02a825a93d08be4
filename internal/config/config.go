package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	Audio       AudioConfig       `yaml:"audio"`
	Paths       PathsConfig       `yaml:"paths"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Ollama      OllamaConfig      `yaml:"ollama"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Report      ReportConfig      `yaml:"report"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type AudioConfig struct {
	AllowedExtensions []string `yaml:"allowed_extensions"`
	MaxUploadBytes    int64    `yaml:"max_upload_bytes" env:"MEETSCRIBE_MAX_UPLOAD_BYTES"`
	// Probe is one of "ffprobe", "sniff" or "none".
	Probe string `yaml:"probe" env:"MEETSCRIBE_AUDIO_PROBE"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	// Temp is where uploads are staged while a pipeline run is in flight.
	Temp string `yaml:"temp" env:"MEETSCRIBE_TEMP_DIR"`
}

type WhisperConfig struct {
	// Engine is "cli" (whisper-cli binary) or "whispercpp" (in-process bindings).
	Engine     string `yaml:"engine" env:"WHISPER_ENGINE"`
	ModelPath  string `yaml:"model_path" env:"WHISPER_MODEL_PATH"`
	BinaryPath string `yaml:"binary_path" env:"WHISPER_BINARY_PATH"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	Preload    bool   `yaml:"preload"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
}

type TranscriberConfig struct {
	// Backend is "local" or "remote".
	Backend string        `yaml:"backend" env:"TRANSCRIBER_BACKEND"`
	Timeout time.Duration `yaml:"timeout"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"-" env:"OPENAI_API_KEY"`
}

type SummarizerConfig struct {
	// Backend is "ollama" or "gemini".
	Backend string        `yaml:"backend" env:"SUMMARIZER_BACKEND"`
	Timeout time.Duration `yaml:"timeout"`
}

type OllamaConfig struct {
	ServerURL string `yaml:"server_url" env:"OLLAMA_HOST"`
	Model     string `yaml:"model"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// APIKeys is a comma separated list, rotated on quota errors.
	APIKeys string `yaml:"-" env:"GEMINI_API_KEYS"`
}

type PipelineConfig struct {
	DegradeActionItems bool `yaml:"degrade_action_items"`
	AllowEmptySummary  bool `yaml:"allow_empty_summary"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr" env:"MEETSCRIBE_ADDR"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type StorageConfig struct {
	DatabasePath string `yaml:"database_path" env:"MEETSCRIBE_DATABASE_PATH"`
}

type ReportConfig struct {
	// Formats lists the files written per processed meeting: "docx", "json".
	Formats []string `yaml:"formats"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

// GeminiKeys splits the configured Gemini keys, dropping blanks.
func (c *Config) GeminiKeys() []string {
	var keys []string
	for _, k := range strings.Split(c.Gemini.APIKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	if c.Audio.MaxUploadBytes < 0 {
		return fmt.Errorf("audio.max_upload_bytes must not be negative")
	}
	if c.Audio.MaxUploadBytes == 0 {
		c.Audio.MaxUploadBytes = 25 * 1024 * 1024
	}
	if len(c.Audio.AllowedExtensions) == 0 {
		c.Audio.AllowedExtensions = []string{".mp3", ".wav", ".m4a"}
	}
	switch c.Audio.Probe {
	case "":
		c.Audio.Probe = "ffprobe"
	case "ffprobe", "sniff", "none":
	default:
		return fmt.Errorf("audio.probe must be ffprobe, sniff or none, got %q", c.Audio.Probe)
	}

	switch c.Transcriber.Backend {
	case "":
		c.Transcriber.Backend = "local"
	case "local", "remote":
	default:
		return fmt.Errorf("transcriber.backend must be local or remote, got %q", c.Transcriber.Backend)
	}
	if c.Transcriber.Backend == "local" {
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		switch c.Whisper.Engine {
		case "":
			c.Whisper.Engine = "cli"
		case "cli", "whispercpp":
		default:
			return fmt.Errorf("whisper.engine must be cli or whispercpp, got %q", c.Whisper.Engine)
		}
		if c.Whisper.Engine == "cli" && c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	}
	if c.Transcriber.Backend == "remote" && c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the remote transcriber")
	}

	switch c.Summarizer.Backend {
	case "":
		c.Summarizer.Backend = "ollama"
	case "ollama", "gemini":
	default:
		return fmt.Errorf("summarizer.backend must be ollama or gemini, got %q", c.Summarizer.Backend)
	}
	if c.Summarizer.Backend == "gemini" && len(c.GeminiKeys()) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required for the gemini summarizer")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.Transcriber.Timeout == 0 {
		c.Transcriber.Timeout = 10 * time.Minute
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.Summarizer.Timeout == 0 {
		c.Summarizer.Timeout = 5 * time.Minute
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "llama3.2"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = filepath.Join(os.TempDir(), "meetscribe")
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
