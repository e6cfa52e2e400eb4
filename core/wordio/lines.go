// core/wordio/lines.go
package wordio

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

const maxLine = 1 << 20

// StreamLines emits each line of r without its line terminator ("\n" or
// "\r\n"). Cancellation via ctx is checked between lines.
func StreamLines(ctx context.Context, r io.Reader, emit func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// StreamPaths streams the lines of each path in order, as if concatenated.
// "-" reads stdin.
func StreamPaths(ctx context.Context, paths []string, stdin io.Reader, emit func(string) error) error {
	for _, p := range paths {
		if err := streamPath(ctx, p, stdin, emit); err != nil {
			return err
		}
	}
	return nil
}

func streamPath(ctx context.Context, path string, stdin io.Reader, emit func(string) error) error {
	rc, err := OpenWithStdin(path, stdin)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamLines(ctx, rc, emit); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	return nil
}

// ReadAll collects every line of paths.
func ReadAll(ctx context.Context, paths []string, stdin io.Reader) ([]string, error) {
	var out []string
	err := StreamPaths(ctx, paths, stdin, func(s string) error {
		out = append(out, s)
		return nil
	})
	return out, err
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
