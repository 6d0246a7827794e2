package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/clinscribe/encounter-pipeline/clients"
	cfg "github.com/clinscribe/encounter-pipeline/config"
	"github.com/clinscribe/encounter-pipeline/orchestrator"
	"github.com/clinscribe/encounter-pipeline/render"
)

var processCmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Run the annotation pipeline on one audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := getConfig()
		if err != nil {
			return err
		}
		if err := conf.Validate(); err != nil {
			return err
		}
		return processFile(cmd.Context(), conf, args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

// processFile runs one encounter end to end: annotate, persist, render.
// The final JSON appears under its final name only after the record passed
// assembly; renderer artifacts come after that again.
func processFile(ctx context.Context, conf *cfg.Root, audioPath string) error {
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}

	p, err := buildPipeline(conf)
	if err != nil {
		return err
	}
	session, err := orchestrator.NewSession(conf.Paths.Outputs, "encounter_run")
	if err != nil {
		return err
	}
	p.OnDiarized = func(rec *orchestrator.Record) {
		// Initial snapshot: segments without text, speakers unclassified.
		if err := session.WriteJSON("output.json", rec); err != nil {
			log.WithError(err).Warn("could not write initial snapshot")
		}
	}

	encounterID := "enc_" + uuid.NewString()[:8]
	rec, err := p.Run(ctx, encounterID, audioPath)
	if err != nil {
		return err
	}

	if err := session.WriteJSON("final_output.json", rec); err != nil {
		return err
	}
	mdPath := session.Path("final_transcript.md")
	if err := os.WriteFile(mdPath, []byte(render.Markdown(rec)), 0o644); err != nil {
		log.WithError(err).Warn("could not write transcript document")
	}
	svgPath := session.Path("timeline.svg")
	if err := os.WriteFile(svgPath, []byte(render.TimelineSVG(rec)), 0o644); err != nil {
		log.WithError(err).Warn("could not write timeline")
	}

	fmt.Print(render.ConsoleSummary(rec, []string{
		session.Path("final_output.json"), mdPath, svgPath,
	}))
	return nil
}

// buildPipeline wires the collaborator clients and the scoring strategy from
// configuration. These are the process-wide service handles; everything
// per-run lives in the Record.
func buildPipeline(conf *cfg.Root) (*orchestrator.Pipeline, error) {
	lex := orchestrator.DefaultLexicon()
	if conf.Classifier.Lexicon != "" {
		var err error
		if lex, err = orchestrator.LoadLexicon(conf.Classifier.Lexicon); err != nil {
			return nil, err
		}
	}

	h := clients.NewHTTP()
	return orchestrator.NewPipeline(
		clients.NewDiarization(h, conf.Services.Diarization.URL),
		clients.NewTranscription(h, conf.Services.Transcription.URL),
		clients.NewLanguageID(h, conf.Services.LanguageID.URL),
		orchestrator.NewKeywordScorer(lex),
		log,
	), nil
}
