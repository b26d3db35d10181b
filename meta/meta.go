// meta/meta.go
package meta

// Name is the command and config directory name.
const Name = "isolation"

// Version is overridden at build time with -ldflags "-X isolation/meta.Version=..."
var Version = "dev"
