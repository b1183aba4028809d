package version

// Version is the version of the yuque client. It is overridden at build time
// with -ldflags "-X github.com/hashicorp-forge/yuque/internal/version.Version=...".
var Version = "0.1.0-dev"
