package config

import "os"

type Config struct {
	ServerPort       string
	NotionToken      string
	NotionDatabaseID string
	// ParseStrategy selects the authoritative aggregation source:
	// "text" (printed total rows, the default) or "table" (line items).
	ParseStrategy string
	LogFormat     string // "text" or "json"
	MaxFileSize   int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	parseStrategy := os.Getenv("PARSE_STRATEGY")
	if parseStrategy == "" {
		parseStrategy = "text"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	return &Config{
		ServerPort:       serverPort,
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		ParseStrategy:    parseStrategy,
		LogFormat:        logFormat,
		MaxFileSize:      10 * 1024 * 1024, // 10 MB
	}
}
