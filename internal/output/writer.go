// # internal/output/writer.go
package output

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"importsearch/internal/core/errors"
	"importsearch/internal/shared/util"
)

// OutputPath derives the destination file from the configured base path:
// an existing suffix is replaced by the format's one, a bare name just
// gains it.
func OutputPath(base, suffix string) string {
	if ext := filepath.Ext(base); ext != "" && filepath.Base(base) != ext {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + suffix
}

// Emit prints the payload to w and mirrors it to the derived output file.
// A failed file write is reported on w but never fails the run; the
// in-memory result already stands.
func Emit(w io.Writer, content, base, suffix string) {
	fmt.Fprintln(w, content)

	path := OutputPath(base, suffix)
	if err := util.WriteStringWithDirs(path, content, 0o644); err != nil {
		werr := errors.Wrap(err, errors.CodeOutputWrite, fmt.Sprintf("writing summary to %s", path))
		fmt.Fprintln(w, werr.Error())
		return
	}
	slog.Debug("summary written", "path", path)
}
