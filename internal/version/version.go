package version

// Version is overridden at link time via -ldflags "-X primerscan/internal/version.Version=...".
var Version = "2.1.0"
