package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flowave-io/webwasp/internal/command"
	"github.com/flowave-io/webwasp/internal/config"
	"github.com/flowave-io/webwasp/internal/headers"
	"github.com/flowave-io/webwasp/internal/monitor"
	"github.com/flowave-io/webwasp/pkg/log"
)

const banner = "webwasp " + config.Version + " - HTTP header console\r\n" +
	"TAB completes commands, arrows browse history, Ctrl-C quits. Type 'help'.\r\n\r\n"

// RunConsoleCommand runs `webwasp console` and returns the process exit code.
func RunConsoleCommand(args []string) int {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	configPath := fs.String("config", "", "Path to an HCL config file (default ./"+config.DefaultPath+" if present)")
	historyMax := fs.Int("history-max", 0, "Number of submitted lines to remember")
	profile := fs.String("profile", "", "HCL header profile to load at start")
	prompt := fs.String("prompt", "", "Prompt string")
	noBanner := fs.Bool("no-banner", false, "Do not print the start banner")
	watch := fs.Bool("watch", false, "Reload the header profile when it changes")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log.SetDebug(*debug)

	path, required := *configPath, true
	if path == "" {
		path, required = config.DefaultPath, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		log.Error(err)
		return 1
	}
	if *historyMax != 0 {
		cfg.HistoryMax = *historyMax
	}
	if *profile != "" {
		cfg.Profile = *profile
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if *noBanner {
		cfg.Banner = false
	}
	if *watch {
		cfg.WatchProfile = true
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration:", err)
		return 1
	}

	fields := headers.NewFields()
	if cfg.Profile != "" {
		p, err := headers.LoadProfile(cfg.Profile)
		if err != nil {
			log.Warn("unable to load header profile:", err)
		} else {
			fields.Replace(p)
			log.Info("Loaded header profile", cfg.Profile)
		}
	}

	hist, err := NewHistory(cfg.HistoryMax)
	if err != nil {
		log.Error(err)
		return 1
	}
	tmpRoot, err := os.UserCacheDir()
	if err != nil {
		log.Debug("no user cache dir, profiles are fetched under the system temp dir:", err)
		tmpRoot = ""
	}
	disp := &command.Dispatcher{
		Fields:  fields,
		Sender:  headers.NewSender(cfg.Timeout()),
		History: hist,
		Fetch: func(ctx context.Context, source string) (headers.Profile, error) {
			return headers.FetchProfile(ctx, source, tmpRoot)
		},
		Out: log.RawWriter(os.Stdout),
	}

	term, err := EnterRawStdin()
	if err != nil {
		log.Error(err)
		return 1
	}
	prevLog := log.SetOutput(log.RawWriter(os.Stderr))
	defer log.SetOutput(prevLog)

	con, err := NewConsole(Options{
		In:         os.Stdin,
		Out:        os.Stdout,
		Prompt:     cfg.Prompt,
		Banner:     bannerFor(cfg),
		History:    hist,
		Completer:  command.NewTrie(command.Vocabulary()...),
		Dispatcher: disp,
		Terminal:   term,
	})
	if err != nil {
		_ = term.Leave()
		log.Error(err)
		return 1
	}

	if cfg.WatchProfile {
		w, err := monitor.WatchFile(cfg.Profile, profileReloader(fields, cfg.Profile, con.Notify))
		if err != nil {
			log.Warn("unable to watch header profile:", err)
		} else {
			con.OnClose(w.Close)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	// The read loop blocks on the terminal; a signal from outside restores the
	// device and ends the process from here.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			code := 0
			if err := con.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 1
			}
			os.Exit(code)
		case <-done:
		}
	}()

	log.Debug("console started, history_max =", cfg.HistoryMax)
	runErr := con.Run(ctx)
	closeErr := con.Close()
	if runErr != nil {
		log.Error(runErr)
		return 1
	}
	if closeErr != nil {
		log.Error(closeErr)
		return 1
	}
	return 0
}

func bannerFor(cfg config.Config) string {
	if !cfg.Banner {
		return ""
	}
	return banner
}

// profileReloader returns the watch callback for path. It runs off the console
// goroutine, so it reports through notify instead of writing to the terminal.
func profileReloader(fields *headers.Fields, path string, notify func(string)) func() {
	return func() {
		p, err := headers.LoadProfile(path)
		if err != nil {
			log.Debug("profile reload:", err)
			notify(fmt.Sprintf("[!] Profile reload failed: %v", err))
			return
		}
		fields.Replace(p)
		log.Debug("reloaded header profile", path)
		notify(fmt.Sprintf("[*] Reloaded header profile %s", path))
	}
}
