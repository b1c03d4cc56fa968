package util

const (
	ServiceName    = "GründerAI Assessment API"
	ServiceVersion = "1.0.0"
)
