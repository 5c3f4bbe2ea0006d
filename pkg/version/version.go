package version

// Version and BuildTime are overridden at build time with
// -ldflags "-X github.com/jaky1206/renko-chart-demo/pkg/version.Version=..."
var Version = "v0.1.0-dev"

var BuildTime = "unknown"
