// Package config defines the application configuration structure and
// loads it from environment variables and optional config files.
//
// Configuration is read with the CATALOG_ environment prefix (for
// example CATALOG_SERVER_PORT, CATALOG_API_BASE_URL), with environment
// variables taking precedence over values from config files. The loaded
// struct is validated before it is returned so the rest of the
// application can rely on its invariants.
package config
