package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cmdgraph/cmdgraph/pkg/errors"
	"github.com/cmdgraph/cmdgraph/pkg/pipeline"
)

// debounceDelay coalesces the bursts of filesystem events editors and the
// data generator produce when rewriting a file.
const debounceDelay = 100 * time.Millisecond

// watchLoop regenerates the output whenever the input file changes, until the
// context is cancelled. The parent directory is watched rather than the file
// itself, since writers commonly replace the file (losing a direct watch) and
// directory watches also catch re-creation.
//
// A conversion failure inside the loop is reported and the loop keeps
// running; the next write to the input gets a fresh attempt.
func watchLoop(ctx context.Context, input, output string, opts pipeline.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create watcher")
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", dir)
	}

	logger := loggerFromContext(ctx)
	logger.Infof("Watching %s for changes", input)

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sameFile(event.Name, input) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			rerun(ctx, input, output, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watch error: %v", err)
		}
	}
}

// rerun performs one conversion inside the watch loop.
func rerun(ctx context.Context, input, output string, opts pipeline.Options) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	stats, err := pipeline.ConvertFile(input, output, opts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return
	}

	p.done("Regenerated " + output)
	printSuccess("%s %s %s", input, iconArrow, output)
	printDetail("%d nodes, %d edges, %d redirects", stats.Nodes, stats.Edges, stats.Redirects)
}

// sameFile compares event paths against the watched input, tolerating the
// relative/cleaned forms fsnotify reports.
func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
