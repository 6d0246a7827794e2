package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/clinscribe/encounter-pipeline/config"
)

var (
	verbose bool

	globalConfig  *cfg.Root
	configLoadErr error

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "encounter-pipeline",
	Short: "Annotate conversational audio with speakers, languages and roles",
	Long: `encounter-pipeline turns a raw conversational recording into a structured,
role-annotated transcript: it diarizes the audio by speaker, transcribes each
turn, detects the language(s) spoken (including code-switching within a turn),
infers each speaker's conversational role (clinician / patient / other), and
writes the result as JSON, a timeline SVG and a transcript document.

Diarization, speech-to-text and language identification run as external
services; their URLs are configured in config_<CONFIG_ENV>.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	conf, err := cfg.Load()
	if err != nil {
		// Deferred: commands that need config get the error from getConfig,
		// while 'version' keeps working without one.
		configLoadErr = err
		return
	}
	globalConfig = conf

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	if lvl, err := logrus.ParseLevel(conf.Pipeline.LogLvl); err == nil {
		log.SetLevel(lvl)
	}
}

func getConfig() (*cfg.Root, error) {
	if globalConfig == nil {
		return nil, configLoadErr
	}
	return globalConfig, nil
}
