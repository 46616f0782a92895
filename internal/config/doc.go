// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv) when present, then reads environment
// variables into the Config struct. Validates required fields at startup so
// misconfiguration fails the process instead of a request.
package config
