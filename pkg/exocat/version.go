package exocat

// Version and Build are set by the build system via ldflags.
var (
	Version = "v0.1.0"
	Build   = "n/a"
)
