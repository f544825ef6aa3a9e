package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// commit and buildDate are set at build time via ldflags alongside version.
// A plain go build leaves them empty and the VCS stamp of the binary is
// used instead.
var (
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the seo-filler version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		printVersion(cmd.OutOrStdout(), info)
	},
}

// printVersion writes the version line, then the commit, build date and Go
// toolchain when known.
func printVersion(w io.Writer, info *debug.BuildInfo) {
	rev, date, dirty := commit, buildDate, false
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if rev == "" {
					rev = s.Value
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}
	if commit == "" && dirty && rev != "" {
		rev += "-dirty"
	}

	fmt.Fprintf(w, "seo-filler %s\n", version)
	if rev != "" {
		fmt.Fprintf(w, "  commit: %s\n", rev)
	}
	if date != "" {
		fmt.Fprintf(w, "  built:  %s\n", date)
	}
	fmt.Fprintf(w, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
