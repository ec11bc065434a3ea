package main

import (
	"context"
	"fmt"
	"io"

	"amphibians/internal/amphibian"
	"amphibians/internal/jsonutil"
	"amphibians/internal/logger"
	"amphibians/internal/state"

	"github.com/spf13/cobra"
)

func newListCmd(flags *flagValues) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the catalog once and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			lvl, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logger.NewConsole(cmd.ErrOrStderr(), lvl)
			// The list command never renders images.
			cfg.ProbeImages = false

			a, err := start(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := awaitSettled(cmd.Context(), a.holder)
			if err != nil {
				return err
			}
			switch s := s.(type) {
			case state.Success:
				if asJSON {
					return printJSON(cmd.OutOrStdout(), s.Records)
				}
				printText(cmd.OutOrStdout(), s.Records)
				return nil
			case state.Error:
				return fmt.Errorf("%w (%s)", amphibian.ErrFetchFailed, s.Reason)
			}
			return fmt.Errorf("unexpected state %s", state.Name(s))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as a JSON array")
	return cmd
}

// awaitSettled blocks until the holder leaves Loading or ctx is done.
func awaitSettled(ctx context.Context, h *state.Holder) (state.UiState, error) {
	settled := make(chan state.UiState, 1)
	cancel := h.Subscribe(func(s state.UiState) {
		if !state.Settled(s) {
			return
		}
		select {
		case settled <- s:
		default:
		}
	})
	defer cancel()

	select {
	case s := <-settled:
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func printJSON(w io.Writer, records []amphibian.Record) error {
	if records == nil {
		records = []amphibian.Record{}
	}
	data, err := jsonutil.MarshalIndent(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printText(w io.Writer, records []amphibian.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No amphibians found.")
		return
	}
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Title())
		if r.ImageURL != "" {
			fmt.Fprintf(w, "  %s\n", r.ImageURL)
		}
		if r.Description != "" {
			fmt.Fprintf(w, "  %s\n", r.Description)
		}
	}
}
