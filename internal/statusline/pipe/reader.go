package pipe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/young1lin/zstatus/internal/logging"
)

// Lines streams the lines of r until EOF or until ctx is done
func Lines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case out <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			logging.Error(fmt.Errorf("read pipe: %w", err))
		}
	}()
	return out
}

// Follow streams the lines of the file at path. A named pipe is reopened
// each time its writer closes it so tools can write to it in turn. A
// regular file is read once.
func Follow(ctx context.Context, path string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for {
			// Blocks on a named pipe until a writer opens it
			f, err := os.Open(path)
			if err != nil {
				logging.Error(fmt.Errorf("open pipe: %w", err))
				return
			}
			info, err := f.Stat()
			fifo := err == nil && info.Mode()&os.ModeNamedPipe != 0

			if !forward(ctx, Lines(ctx, f), out) {
				f.Close()
				return
			}
			f.Close()
			if !fifo || ctx.Err() != nil {
				return
			}
		}
	}()
	return out
}

// forward copies lines to out. It returns false once ctx is done.
func forward(ctx context.Context, lines <-chan string, out chan<- string) bool {
	for line := range lines {
		select {
		case out <- line:
		case <-ctx.Done():
			return false
		}
	}
	return ctx.Err() == nil
}
