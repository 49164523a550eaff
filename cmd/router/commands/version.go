// ABOUTME: version subcommand reporting the router build stamp
// ABOUTME: Falls back to module build info when the binary was built without -ldflags
package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unstamped = "dev"

var versionInfo = VersionInfo{
	Version: unstamped,
	Commit:  "none",
	Date:    "unknown",
}

// VersionInfo is the build stamp injected through -ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// SetVersion records the stamp main received from the linker
func SetVersion(version, commit, date string) {
	versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// resolvedVersion prefers the linker stamp, then the module version from `go install`
func resolvedVersion() string {
	if versionInfo.Version != unstamped {
		return versionInfo.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return unstamped
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the router build stamp",
		Long:  `Print the router version, git commit, build date, and the Go toolchain it was built with.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, resolvedVersion())
				return
			}
			fmt.Fprintf(out, "Tag Router %s\n", resolvedVersion())
			fmt.Fprintf(out, "Commit: %s\n", versionInfo.Commit)
			fmt.Fprintf(out, "Built:  %s\n", versionInfo.Date)
			fmt.Fprintf(out, "Go:     %s\n", runtime.Version())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version")

	return cmd
}
