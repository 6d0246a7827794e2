package commands

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var audioExts = map[string]bool{".wav": true, ".mp3": true, ".flac": true, ".m4a": true}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Process audio files as they appear in a drop directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := getConfig()
		if err != nil {
			return err
		}
		if err := conf.Validate(); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(args[0]); err != nil {
			return err
		}
		log.WithField("dir", args[0]).Info("watching for audio files")

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if !audioExts[strings.ToLower(filepath.Ext(event.Name))] {
					continue
				}
				log.WithField("audio", event.Name).Info("new recording")
				// Runs are independent: a failed file never stops the watch.
				if err := processFile(ctx, conf, event.Name); err != nil {
					log.WithError(err).WithField("audio", event.Name).Error("run failed")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.WithError(err).Warn("watcher error")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
