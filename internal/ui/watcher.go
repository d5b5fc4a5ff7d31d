package ui

import (
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// WatchConfigCmd blocks until the config file at path is written or created,
// then returns a ConfigChangedMsg. The caller re-issues it after each change.
func WatchConfigCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return configWatchFailedMsg{err: fmt.Errorf("create watcher: %w", err)}
		}
		defer watcher.Close()

		// Watch the directory: editors often replace the file instead of writing it.
		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			return configWatchFailedMsg{err: fmt.Errorf("watch %s: %w", dir, err)}
		}
		log.Printf("Watching for config changes in: %s", dir)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				log.Printf("Detected change in: %s", event.Name)
				return ConfigChangedMsg{Path: event.Name}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("File watcher error: %v", err)
			}
		}
	}
}
