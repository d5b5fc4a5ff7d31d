package config

// AppName is used for display and for the config directory name.
const AppName = "gridnav"

// Version can be overwritten at build time:
// go build -ldflags "-X 'github.com/lucky7xz/gridnav/internal/config.Version=v1.0.0'"
var Version = "v0.1.0-dev"
