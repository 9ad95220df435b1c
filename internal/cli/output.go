package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// resolveOutputPath picks the output file for one input. Without -o the
// output sits next to the input with the target extension. With -o and a
// single input the flag names the output file; with multiple inputs it names
// a directory the default filenames are placed in.
func resolveOutputPath(input, output string, multiple bool, outputExt string, logger *slog.Logger) string {
	base := strings.TrimSuffix(input, filepath.Ext(input)) + outputExt

	if output == "" {
		return base
	}
	if !multiple {
		return output
	}

	info, err := os.Stat(output)
	if err != nil || !info.IsDir() {
		logger.Warn("output is not a directory, writing next to inputs",
			slog.String("output", output),
		)
		return base
	}
	return filepath.Join(output, filepath.Base(base))
}

// confirmOverwrite reports whether path may be written. Missing files and
// --yes always pass; otherwise the user is asked on the terminal. The caller
// owns the reader: one buffered reader per invocation, so consecutive prompts
// consume consecutive answers instead of buffering past each other.
func confirmOverwrite(path string, yes bool, in *bufio.Reader, out io.Writer) (bool, error) {
	if yes {
		return true, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}

	fmt.Fprintf(out, "File '%s' exists. Overwrite? (y)es/(n)o [n]: ", path)

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
