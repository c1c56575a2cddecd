package everyuuid

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Follow calls a handler for each line of a file, then waits for the
// file to be written to and calls the handler for each new line.
//
// Follow returns nil when the context is cancelled, or the first error
// returned by the handler. A trailing line without a newline is held
// until its newline is written.
func Follow(ctx context.Context, path string, fn func(string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("everyuuid; follow; cannot open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("everyuuid; follow; cannot create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err = watcher.Add(path); err != nil {
		return fmt.Errorf("everyuuid; follow; cannot watch file: %w", err)
	}

	lr := &lineReader{reader: bufio.NewReader(f)}
	if err = lr.drain(fn); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				if err = lr.drain(fn); err != nil {
					return err
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("everyuuid; follow; watcher error: %w", watchErr)
		}
	}
}

type lineReader struct {
	reader  *bufio.Reader
	partial string
}

// drain reads every complete line currently available.
func (lr *lineReader) drain(fn func(string) error) error {
	for {
		line, err := lr.reader.ReadString('\n')
		if err == io.EOF {
			lr.partial += line
			return nil
		}
		if err != nil {
			return fmt.Errorf("everyuuid; follow; cannot read file: %w", err)
		}
		line = lr.partial + line
		lr.partial = ""
		if err = fn(strings.TrimRight(line, "\r\n")); err != nil {
			return err
		}
	}
}
