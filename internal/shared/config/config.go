package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	ObjectStoreType    string
	LocalStoreDir      string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string
	DatabaseURL        string
	Env                string
	ClassifierProvider string
	HFAPIToken         string
	SentimentModel     string
	ZeroShotModel      string
	ClassifierTimeout  time.Duration
	RecommendedSkills  []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		DatabaseURL:        dbURL,
		Env:                env,
		ClassifierProvider: normalizeClassifier(getEnv("CLASSIFIER_PROVIDER", "huggingface")),
		HFAPIToken:         getEnv("HF_API_TOKEN", ""),
		SentimentModel:     getEnv("SENTIMENT_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
		ZeroShotModel:      getEnv("ZERO_SHOT_MODEL", "facebook/bart-large-mnli"),
		ClassifierTimeout:  getEnvSeconds("CLASSIFIER_TIMEOUT_SECONDS", 10*time.Second),
		RecommendedSkills:  splitAndTrim(os.Getenv("RECOMMENDED_SKILLS")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("invalid %s=%q, using default", key, raw)
		return def
	}
	return time.Duration(secs) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeClassifier(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "stub", "none":
		return "stub"
	default:
		return "huggingface"
	}
}
