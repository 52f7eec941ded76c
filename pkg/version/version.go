package version

// Tag is stamped at build time via -ldflags.
var Tag = "dev"
