package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/common"
	"github.com/purser-dev/purser/internal/model"
)

func askCmd() *cobra.Command {
	var asJSON bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Ask the wallet one question and print the answer",
		Long: `Processes a single message through the conversation engine and prints
the reply. With --debug, also shows the classified intent, confidence,
alternatives, and the resulting conversation state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := strings.TrimSpace(strings.Join(args, " "))
			if input == "" {
				return common.ErrEmptyInput
			}

			store, err := initWallet(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			snap, err := store.Snapshot(ctx)
			if err != nil {
				return err
			}

			eng := initEngine()
			sess := eng.NewSession()
			turn, err := eng.Process(ctx, sess, input, snap)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(turn.Reply, turn.Result, turn.State)
			}

			fmt.Println(turn.Reply)
			if debug {
				fmt.Fprintf(os.Stderr, "\nintent: %s (%.2f)\n", turn.Result.Intent.Kind, turn.Result.Confidence)
				for _, alt := range turn.Result.Alternatives {
					fmt.Fprintf(os.Stderr, "  alt: %s (%.2f, %s)\n", alt.Intent.Kind, alt.Confidence, alt.Source)
				}
				fmt.Fprintf(os.Stderr, "state: %s\n", turn.State.Kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "print classification details to stderr")
	return cmd
}

func printJSON(reply string, result model.ClassificationResult, state model.ConversationState) error {
	type altOut struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
		Source     string  `json:"source"`
	}
	out := struct {
		Reply        string   `json:"reply"`
		Intent       string   `json:"intent"`
		Confidence   float64  `json:"confidence"`
		NeedsClarify bool     `json:"needs_clarification"`
		Alternatives []altOut `json:"alternatives,omitempty"`
		State        string   `json:"state"`
	}{
		Reply:        reply,
		Intent:       string(result.Intent.Kind),
		Confidence:   result.Confidence,
		NeedsClarify: result.NeedsClarification,
		State:        string(state.Kind),
	}
	for _, alt := range result.Alternatives {
		out.Alternatives = append(out.Alternatives, altOut{
			Intent:     string(alt.Intent.Kind),
			Confidence: alt.Confidence,
			Source:     alt.Source,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
