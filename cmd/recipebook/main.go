// Recipe Book: an interactive console recipe manager.
//
// Usage:
//
//	recipebook [-verbose] [-quiet] [-config recipebook.yaml] [-log-file path] [-chime]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipebook/internal/alert"
	"github.com/hammamikhairi/recipebook/internal/config"
	"github.com/hammamikhairi/recipebook/internal/conversation"
	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
	"github.com/hammamikhairi/recipebook/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", config.DefaultLogFile, "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "", "config file (default: ./recipebook.yaml when present)")
	chime := flag.Bool("chime", false, "play a chime when a recipe exceeds the calorie threshold")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-file":
			cfg.LogFile = *logFile
		case "chime":
			cfg.Chime = *chime
		}
	})
	if *verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff
	}

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()

	// Route the standard log package (used by oto) to the same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)
	if cfg.File != "" {
		log.Info("config loaded from %s", cfg.File)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storage.NewMemoryStore(log)
	book := recipe.NewBook(store, log, cfg.BookOptions()...)
	parser := conversation.NewMenuParser(log)

	if display.IsInteractive() {
		runInteractive(ctx, cfg, book, parser, log)
	} else {
		runPlain(ctx, cfg, book, parser, log)
	}
}

func runInteractive(ctx context.Context, cfg *config.Config, book *recipe.Book, parser domain.CommandParser, log *logger.Logger) {
	ui := display.NewUI()
	notifier := withChime(cfg, conversation.NewCLINotifier(log, ui.Printf), log)

	eng := engine.New(book, parser, notifier, ui, ui.InputChan(), log,
		engine.WithStatusHook(ui.SetStatus),
	)

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// The engine owns the book from here on; the UI only sees Status.
	go func() {
		ui.WaitReady()
		if err := eng.Run(ctx); err != nil && !errors.Is(err, domain.ErrInputClosed) {
			log.Error("engine: %v", err)
		}
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
}

func runPlain(ctx context.Context, cfg *config.Config, book *recipe.Book, parser domain.CommandParser, log *logger.Logger) {
	out := display.NewPlain(os.Stdout)
	notifier := withChime(cfg, conversation.NewCLINotifier(log, out.Printf), log)

	eng := engine.New(book, parser, notifier, out, display.ScanLines(ctx, os.Stdin, log), log)

	fmt.Print(display.PlainBanner())
	if err := eng.Run(ctx); err != nil && !errors.Is(err, domain.ErrInputClosed) {
		log.Error("engine: %v", err)
		os.Exit(1)
	}
}

// withChime wraps text with an audible alert when enabled and an audio
// device is available.
func withChime(cfg *config.Config, text domain.Notifier, log *logger.Logger) domain.Notifier {
	if !cfg.Chime {
		return text
	}
	player, err := alert.NewPlayer(log, 0.4)
	if err != nil {
		log.Error("audio player init failed, chime disabled: %v", err)
		return text
	}
	log.Info("calorie chime enabled")
	return alert.NewChimingNotifier(text, player, log)
}

// openLog directs logs to a file by default so the REPL stays clean.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == config.LogToStderr {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}
