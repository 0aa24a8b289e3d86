// Package config loads the TeamQuest configuration and builds the process-wide infrastructure
// from it: database pools, the event store, OpenTelemetry providers and loggers.
//
// Precedence, highest first: environment variables (TEAMQUEST_SERVER_HTTP_PORT -> server.http_port),
// the YAML file, built-in defaults.
package config
