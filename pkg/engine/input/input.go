package input

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
)

// ReadLines turns each line read from r into a terminal RawInput and sends
// it on the returned channel. The channel is closed when r is exhausted or
// ctx is done.
func ReadLines(ctx context.Context, r io.Reader) <-chan RawInput {
	out := make(chan RawInput)

	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			select {
			case out <- RawInput{Device: DeviceTerminal, Code: line, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
