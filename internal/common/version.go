package common

// Version is the client version, overridden at build time via
// -ldflags "-X github.com/acutrader/acutrader-cli/internal/common.Version=..."
var Version = "dev"
