// Command crossword generates a crossword layout from a word-and-hint
// corpus and prints the answer grid, the masked grid, and the numbered
// clue list.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"crosswordlayout/internal/assembler"
	"crosswordlayout/internal/config"
	"crosswordlayout/internal/corpus"
	"crosswordlayout/internal/domain"
	"crosswordlayout/internal/gamestore"
	"crosswordlayout/internal/languagepack"
	"crosswordlayout/internal/render"
	"crosswordlayout/internal/wordstore"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Default()
	var savePath string
	var verbose bool

	root := &cobra.Command{
		Use:          "crossword <language_code>",
		Short:        "Generate a crossword layout from a word-and-hint corpus.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.LanguageCode = args[0]
			cfg.SavePath = savePath
			return run(cmd.Context(), cfg, verbose)
		},
	}

	flags := root.Flags()
	flags.IntVar(&cfg.NumWords, "num-words", config.EnvIntOr("CROSSWORD_NUM_WORDS", cfg.NumWords), "target word count per puzzle")
	flags.IntVar(&cfg.MaxPaths, "max-paths", config.EnvIntOr("CROSSWORD_MAX_PATHS", cfg.MaxPaths), "sampler budget (aggregate across workers)")
	flags.IntVar(&cfg.Workers, "workers", config.EnvIntOr("CROSSWORD_WORKERS", cfg.Workers), "sampler parallelism")
	flags.IntVar(&cfg.StopWordOffset, "stop-word-offset", config.EnvIntOr("CROSSWORD_STOP_WORD_OFFSET", cfg.StopWordOffset), "skip the first N most common words")
	flags.IntVar(&cfg.MostFrequents, "most-frequents", config.EnvIntOr("CROSSWORD_MOST_FREQUENTS", cfg.MostFrequents), "cap the visible dictionary slice by absolute index (0 = no cap)")
	flags.IntVar(&cfg.MinLen, "min-len", config.EnvIntOr("CROSSWORD_MIN_LEN", cfg.MinLen), "minimum word length")
	flags.IntVar(&cfg.MaxLen, "max-len", config.EnvIntOr("CROSSWORD_MAX_LEN", cfg.MaxLen), "maximum word length")
	flags.Int64Var(&cfg.Seed, "seed", config.EnvInt64Or("CROSSWORD_SEED", cfg.Seed), "master RNG seed (0 = time-based)")
	flags.StringVar(&cfg.CorpusDir, "corpus-dir", config.EnvOr("CROSSWORD_CORPUS_DIR", cfg.CorpusDir), "directory holding <language>.json corpora")
	flags.StringVar(&savePath, "save", config.EnvOr("CROSSWORD_SAVE", ""), "SQLite database path to persist the finished game to")
	flags.BoolVar(&verbose, "verbose", config.EnvOr("CROSSWORD_VERBOSE", "") != "", "enable debug-level logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("master seed", "seed", cfg.Seed)

	reg := languagepack.DefaultRegistry()
	entries, err := corpus.Load(reg, cfg.LanguageCode, cfg.CorpusDir)
	if err != nil {
		logger.Error("failed to load corpus", "language", cfg.LanguageCode, "error", err)
		return err
	}
	logger.Info("corpus loaded", "language", cfg.LanguageCode, "words", humanize.Comma(int64(len(entries))))

	pool := wordstore.NewWordPool(entries)
	picker := wordstore.NewPicker(pool, cfg.StopWordOffset, cfg.MostFrequents, rand.New(rand.NewSource(cfg.Seed)))

	asmCfg := assembler.Config{
		NumWords: cfg.NumWords,
		MinLen:   cfg.MinLen,
		MaxLen:   cfg.MaxLen,
		MaxPaths: cfg.MaxPaths,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
	}

	var bar *pb.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = pb.StartNew(assembler.DefaultMaxRetries)
		asmCfg.OnAttempt = func(attempt, maxRetries int) {
			bar.SetCurrent(int64(attempt))
		}
		defer bar.Finish()
	}

	start := time.Now()
	game, err := assembler.New(picker, pool, cfg.LanguageCode, asmCfg, logger).Build(ctx)
	if err != nil {
		logger.Error("failed to assemble game", "error", err)
		return err
	}
	logger.Info("game assembled", "id", game.ID, "words", len(game.Grid.PlacedWords), "elapsed", time.Since(start))

	fmt.Println("ANSWER GRID")
	fmt.Print(render.FormatAnswerGrid(game.Grid.Cells))
	fmt.Println()

	fmt.Println("MASKED GRID")
	fmt.Print(render.FormatMaskedGrid(assembler.MaskedGrid(game.Grid)))
	fmt.Println()

	fmt.Println("CLUES")
	fmt.Print(render.FormatClues(game.Clues))

	if cfg.SavePath != "" {
		if err := saveGame(ctx, cfg.SavePath, game); err != nil {
			logger.Error("failed to save game", "path", cfg.SavePath, "error", err)
			return err
		}
		logger.Info("game saved", "path", cfg.SavePath)
	}

	return nil
}

func saveGame(ctx context.Context, path string, game *domain.Game) error {
	store, err := gamestore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	return store.Save(ctx, game)
}
