package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/game"
	"github.com/vovakirdan/connectx/internal/platform/text"
	"github.com/vovakirdan/connectx/internal/records"
	"github.com/vovakirdan/connectx/internal/storage"
)

var (
	flagVariant string
	flagMoves   []int
	flagRecord  bool
	flagJobs    int
	flagQuiet   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [file|dir]...",
	Short: "Replay recorded games",
	Long: `Replay games move by move, printing the verdict after every drop and the
final board. Record files may be YAML (.yaml, .yml) or HCL (.hcl);
directories are searched recursively. Without files, --moves gives an
inline list of columns played on --variant.

A record with an expected outcome fails the command if the replay ends
differently.

Examples:
  connectx replay games/row-win.yaml
  connectx replay games/ --jobs 8 --quiet
  connectx replay --variant trio --moves 3,4,2,0,0,0
  connectx replay games/ --record`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagVariant, "variant", "", "Variant for --moves (default: from config)")
	replayCmd.Flags().IntSliceVar(&flagMoves, "moves", nil, "Comma-separated columns to play")
	replayCmd.Flags().BoolVar(&flagRecord, "record", false, "Store finished games in the results database")
	replayCmd.Flags().IntVar(&flagJobs, "jobs", 4, "Number of games replayed in parallel")
	replayCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the final summary of each game")
}

func runReplay(cmd *cobra.Command, args []string) error {
	recs, err := collectRecords(args, flagVariant, flagMoves)
	if err != nil {
		return err
	}

	base := game.Options{Logger: logger}
	limits := cfg.CoreLimits()
	base.Limits = &limits

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		base.Saver = store
	}

	out := cmd.OutOrStdout()
	r := text.ForWriter(out)
	reports := make([]bytes.Buffer, len(recs))
	failures := make([]error, len(recs))

	var eg errgroup.Group
	eg.SetLimit(max(flagJobs, 1))
	for i := range recs {
		eg.Go(func() error {
			failures[i] = replayOne(&reports[i], r, recs[i], base)
			return nil
		})
	}
	eg.Wait()

	failed := 0
	for i := range recs {
		out.Write(reports[i].Bytes())
		if failures[i] != nil {
			failed++
			logger.Error("replay failed", "record", recs[i].ID, "error", failures[i])
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(recs))
	}
	return nil
}

// replayOne replays rec and writes its report to w.
func replayOne(w *bytes.Buffer, r *text.Renderer, rec records.Record, base game.Options) error {
	_, rules, err := rec.Rules()
	if err != nil {
		return err
	}
	opts := base
	opts.Roster = cfg.Roster(rules.Players)

	title := rec.ID
	if rec.Name != "" {
		title = fmt.Sprintf("%s - %s", rec.ID, rec.Name)
	}
	fmt.Fprintf(w, "== %s\n", title)

	g, steps, err := records.Replay(rec, opts)
	if !flagQuiet {
		for _, s := range steps {
			fmt.Fprintln(w, r.Verdict(s.Index, s.Outcome))
		}
	}
	if g == nil {
		fmt.Fprintf(w, "error: %v\n\n", err)
		return err
	}

	if !flagQuiet {
		var highlight []core.Position
		if winLine, ok := g.WinningLine(); ok {
			highlight = winLine.Positions()
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, r.Board(g.Board(), g.Players(), highlight))
	}
	fmt.Fprintln(w, r.Summary(g))
	if err != nil {
		if errors.Is(err, records.ErrOutcomeMismatch) {
			fmt.Fprintf(w, "expected %s, got %s\n", rec.Expect, records.OutcomeLabel(g))
		} else {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	fmt.Fprintln(w)
	return err
}

// collectRecords loads the records named by paths, or builds an inline
// record from moves when no paths are given.
func collectRecords(paths []string, variant string, moves []int) ([]records.Record, error) {
	if len(paths) == 0 {
		if len(moves) == 0 {
			return nil, errors.New("nothing to replay: give record files or --moves")
		}
		if variant == "" {
			variant = cfg.Game.Variant
		}
		return []records.Record{{ID: "inline", Variant: variant, Moves: moves}}, nil
	}

	var recs []records.Record
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := records.NewLoader(path).LoadAll()
			if err != nil {
				return nil, err
			}
			recs = append(recs, found...)
			continue
		}
		rec, err := records.LoadFile(path)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return nil, errors.New("no record files found")
	}
	return recs, nil
}
