package quillon

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/quillon/quillon.Version=...".
var Version = "0.2.0"
