package version

// Version is the gbkit release version, overridable at link time with
// -ldflags "-X gbkit/internal/version.Version=...".
var Version = "0.2.0"
