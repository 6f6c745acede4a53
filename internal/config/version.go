package config

// Version is the explorer binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/mantle-explorer/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
