package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solve/internal/generator"
	"svw.info/sudoku-solve/internal/gridio"
	"svw.info/sudoku-solve/internal/hint"
	"svw.info/sudoku-solve/internal/infrastructure/storage"
	"svw.info/sudoku-solve/internal/solver"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func setupLogger(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newRootCmd() *cobra.Command {
	var (
		levelStr   string
		cpuProfile bool
		prof       interface{ Stop() }
	)
	cmd := &cobra.Command{
		Use:   "sudoku-solve <puzzle-file>",
		Short: "Enumerates every completion of a 9x9 Sudoku puzzle",
		Long: "sudoku-solve reads a puzzle file (9 lines; digits are givens, '0', '-' and\n" +
			"space are empty cells) and prints every valid completion, separated by a\n" +
			"line of nine dashes. A puzzle with no completion prints nothing.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(levelStr)
			if cpuProfile {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")
	cmd.AddCommand(newGenerateCmd(), newHintCmd(), newServeCmd())
	return cmd
}

// runSolve is the primary surface: read, enumerate, print. Malformed
// input aborts before any solving; an unsolvable puzzle prints nothing
// and exits zero.
func runSolve(ctx context.Context, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := gridio.Read(f)
	if err != nil {
		return err
	}

	sols, st, err := solver.NewEnumerator().SolveAll(ctx, g)
	if err != nil {
		return err
	}
	logger.Debug("solved", "solutions", sols.Len(), "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))
	if sols.Len() > 0 {
		fmt.Fprintln(out, gridio.RenderAll(sols))
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	var (
		seed    int64
		diffStr string
		saveDir string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			s := solver.NewEnumerator()
			g := generator.NewUniqueGenerator(s)
			p, st, err := g.Generate(cmd.Context(), seed, parseDifficulty(diffStr))
			if err != nil {
				return err
			}
			logger.Info("generated", "seed", seed, "difficulty", diffStr,
				"givens", p.Givens.FillCount(), "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
			if saveDir != "" {
				if err := storage.NewFS(saveDir).Save(cmd.Context(), p); err != nil {
					return err
				}
				logger.Info("saved", "id", p.ID, "dir", saveDir)
			}
			fmt.Fprintln(cmd.OutOrStdout(), gridio.Render(&p.Givens))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&diffStr, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "persist the puzzle as JSON under this directory")
	return cmd
}

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <puzzle-file>",
		Short: "Suggests the next naked or hidden single",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			g, err := gridio.Read(f)
			if err != nil {
				return err
			}
			h, ok, err := hint.NewSingles().Hint(cmd.Context(), g)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no single-candidate deduction available")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Message)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
