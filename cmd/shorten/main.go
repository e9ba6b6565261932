// Command shorten is a terminal client for the shortening service.
//
//	shorten shorten -url https://example.com [-slug promo] [-qr] [-expires 2026-12-31] -user alice@example.com
//	shorten stats -user alice@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/auth"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/notify"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
	"github.com/vadimbarashkov/url-shortener-web/internal/usecase"

	backend "github.com/vadimbarashkov/url-shortener-web/internal/adapter/backend/http"
)

const expiresLayout = "2006-01-02"

var errUsage = errors.New("usage: shorten <shorten|stats> [flags]")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	backendURL string
	apiToken   string
	baseURL    string
	signInURL  string
	username   string
	timeout    time.Duration
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.backendURL, "backend", envOr("BACKEND_URL", "http://localhost:8081"), "shortening service URL")
	fs.StringVar(&g.apiToken, "token", os.Getenv("BACKEND_API_TOKEN"), "shortening service API token")
	fs.StringVar(&g.baseURL, "base", envOr("BASE_URL", "http://localhost:8081"), "base URL of short links")
	fs.StringVar(&g.signInURL, "signin", envOr("SIGN_IN_URL", "http://localhost:8080/api/v1/auth/login"), "where to sign in")
	fs.StringVar(&g.username, "user", os.Getenv("SHORTEN_USER"), "signed-in username")
	fs.DurationVar(&g.timeout, "timeout", 10*time.Second, "backend request timeout")
}

func (g *globalFlags) client() (*backend.Client, error) {
	return backend.NewClient(
		g.backendURL,
		backend.WithAPIToken(g.apiToken),
		backend.WithTimeout(g.timeout),
	)
}

func (g *globalFlags) user() auth.StaticUser {
	if g.username == "" {
		return auth.StaticUser(entity.Anonymous)
	}
	return auth.StaticUser(entity.User{Username: g.username, SignedIn: true})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger() *slog.Logger {
	return httplog.NewLogger("shorten", httplog.Options{
		LogLevel: slog.LevelWarn,
		Concise:  true,
		Writer:   os.Stderr,
	}).Logger
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "shorten":
		return runShorten(ctx, args[1:], out)
	case "stats":
		return runStats(ctx, args[1:], out)
	default:
		return errUsage
	}
}

func runShorten(ctx context.Context, args []string, out io.Writer) error {
	var (
		g       globalFlags
		rawURL  string
		slug    string
		qr      bool
		expires string
	)

	fs := flag.NewFlagSet("shorten", flag.ContinueOnError)
	g.register(fs)
	fs.StringVar(&rawURL, "url", "", "URL to shorten")
	fs.StringVar(&slug, "slug", "", "custom slug, up to 8 characters")
	fs.BoolVar(&qr, "qr", false, "generate a QR code")
	fs.StringVar(&expires, "expires", "", "expiration date, YYYY-MM-DD")

	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := g.client()
	if err != nil {
		return err
	}

	forms := usecase.NewFormUseCase(
		usecase.NewRequestBuilder(validator.New()),
		client,
		memory.NewLinkRepository(),
		g.user(),
		usecase.WithPreviewBaseURL(g.baseURL),
		usecase.WithLogger(newLogger()),
	)

	form := forms.NewForm(
		usecase.WithNotifier(notify.NewWriter(out)),
		usecase.WithAuthRequired(func(context.Context) {
			fmt.Fprintf(out, "Sign in to shorten URLs: %s\n", g.signInURL)
		}),
	)

	form.SetURL(rawURL)
	form.EnableQRCode(qr)

	if slug != "" {
		form.EnableCustomSlug(true)
		form.SetCustomSlug(slug)
	}

	if expires != "" {
		at, err := time.ParseInLocation(expiresLayout, expires, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -expires: %w", err)
		}

		form.EnableExpiration(true)
		if err := form.SelectExpiration(at); err != nil {
			return err
		}
		fmt.Fprintf(out, "Expires on %s\n", form.State().ExpirationLabel)
	}

	link, err := form.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s -> %s/%s\n", link.OriginalURL, strings.TrimSuffix(g.baseURL, "/"), link.Slug)
	if link.QRCode != "" {
		fmt.Fprintf(out, "QR code: %s\n", link.QRCode)
	}

	return nil
}

func runStats(ctx context.Context, args []string, out io.Writer) error {
	var g globalFlags

	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	g.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if g.username == "" {
		fmt.Fprintf(out, "Sign in to see your stats: %s\n", g.signInURL)
		return usecase.ErrAuthRequired
	}

	client, err := g.client()
	if err != nil {
		return err
	}

	store := memory.NewLinkRepository()

	if _, err := usecase.NewLinkUseCase(store, client).Sync(ctx, g.username); err != nil {
		return err
	}

	summary, err := usecase.NewDashboard(store, time.Local).Summary(ctx, g.username)
	if err != nil {
		return err
	}

	printSummary(out, summary)
	return nil
}

func printSummary(out io.Writer, s *usecase.Summary) {
	fmt.Fprintf(out, "Total links:    %d\n", s.TotalLinks)
	fmt.Fprintf(out, "Total clicks:   %d\n", s.TotalClicks)
	fmt.Fprintf(out, "Average clicks: %s\n", s.AverageLabel())

	if len(s.Series) == 0 {
		return
	}

	fmt.Fprintf(out, "Clicks %s to %s: %s\n", s.Series[0].Date, s.Series[len(s.Series)-1].Date, sparkline(s.Series))
}

var sparkBars = []rune("▁▂▃▄▅▆▇█")

// sparkline draws one bar per point, scaled to the largest click count.
func sparkline(points []entity.ChartPoint) string {
	var peak int64
	for _, p := range points {
		peak = max(peak, p.Clicks)
	}

	var b strings.Builder
	for _, p := range points {
		idx := 0
		if peak > 0 {
			idx = max(int(p.Clicks*int64(len(sparkBars)-1)/peak), 0)
		}
		b.WriteRune(sparkBars[idx])
	}

	return b.String()
}
