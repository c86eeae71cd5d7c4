package commands

import (
	"fmt"
	"io"

	"github.com/utilkit-io/utilkit/models"
)

// RunVersion prints the build metadata stamped into the binary. Fields the
// linker did not set show as "N/A" in text output.
func RunVersion(out io.Writer, build models.AppBuildInfo, format string) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	if format == "json" {
		return printJSON(out, models.VersionResponse{
			Version:     orNA(build.BuildVersion()),
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		})
	}

	_, _ = fmt.Fprintf(out, "Build version: %s\n", orNA(build.BuildVersion()))
	_, _ = fmt.Fprintf(out, "Build date: %s\n", orNA(build.BuildDate()))
	_, _ = fmt.Fprintf(out, "Build commit: %s\n", orNA(build.BuildCommit()))
	return nil
}
