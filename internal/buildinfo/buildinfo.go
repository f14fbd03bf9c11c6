package buildinfo

import "fmt"

// Name is the program name shown in window titles and logs.
const Name = "painter3d"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title is the window title, with the frame rate when fps > 0.
func Title(fps float64) string {
	if fps > 0 {
		return fmt.Sprintf("%s (%s) - FPS: %.0f", Name, Short(), fps)
	}
	return fmt.Sprintf("%s (%s)", Name, Short())
}
