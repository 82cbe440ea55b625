// Command marketctl drives the marketplace API from a terminal: sign up,
// browse influencers, build and submit a campaign, answer requests and watch
// notifications.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/client"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type cliConfig struct {
	APIURL       string        `env:"MARKET_API_URL" envDefault:"http://localhost:3000"`
	Email        string        `env:"MARKET_EMAIL"`
	Password     string        `env:"MARKET_PASSWORD"`
	PollInterval time.Duration `env:"NOTIFICATION_POLL_INTERVAL" envDefault:"30s"`
}

const usage = `usage: marketctl <command> [flags]

commands:
  register     create an account (and sign in)
  influencers  list influencers
  campaign     create a campaign from a draft
  request      send a campaign request to an influencer
  status       change a campaign request status
  contact      send a message to the admins
  ticket       submit a support ticket (no account needed)
  watch        poll notifications as an influencer

Credentials come from MARKET_EMAIL and MARKET_PASSWORD.`

func main() {
	_ = godotenv.Load()

	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	log, _ := zcfg.Build()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api, err := client.New(cfg.APIURL, log)
	if err != nil {
		log.Fatal("failed to create client", zap.Error(err))
	}
	app := client.NewApp(api, client.NewStore(), log)

	if err := run(ctx, cfg, app, log, os.Args[1], os.Args[2:]); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "error (%d): %s\n", apiErr.StatusCode, apiErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, app *client.App, log *zap.Logger, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)

	signIn := func() error {
		if cfg.Email == "" || cfg.Password == "" {
			return errors.New("MARKET_EMAIL and MARKET_PASSWORD are required")
		}
		_, err := app.Login(ctx, cfg.Email, cfg.Password)
		return err
	}

	switch cmd {
	case "register":
		name := fs.String("name", "", "display name")
		role := fs.String("role", "customer", "customer or influencer")
		category := fs.String("category", "", "influencer category")
		_ = fs.Parse(args)

		req := dto.RegisterRequest{Email: cfg.Email, Password: cfg.Password, Name: *name, Role: *role}
		if *category != "" {
			req.Category = category
		}
		u, err := app.Register(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(u)

	case "influencers":
		q := client.InfluencerQuery{}
		fs.StringVar(&q.Category, "category", "", "category filter")
		fs.StringVar(&q.Query, "q", "", "name or bio search")
		fs.StringVar(&q.Platform, "platform", "", "platform filter")
		fs.StringVar(&q.MinFollowers, "min-followers", "", `minimum audience, e.g. "10K"`)
		fs.IntVar(&q.Limit, "limit", 0, "page size")
		fs.IntVar(&q.Offset, "offset", 0, "page offset")
		_ = fs.Parse(args)

		list, err := app.API.ListInfluencers(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(list)

	case "campaign":
		product := fs.String("product", "", "product name")
		desc := fs.String("desc", "", "product description")
		audience := fs.String("audience", "", "target audience")
		platform := fs.String("platform", "", "platform")
		budget := fs.Int("budget", -1, "budget, omitted when negative")
		status := fs.String("status", "draft", "draft or active")
		_ = fs.Parse(args)

		if err := signIn(); err != nil {
			return err
		}
		app.Store.UpdateDraft(func(d *client.CampaignDraft) {
			d.ProductName = *product
			d.ProductDesc = *desc
			d.TargetAudience = *audience
			d.Platform = *platform
			if *budget >= 0 {
				d.Budget = budget
			}
		})
		campaign, err := app.SubmitDraft(ctx, *status)
		if err != nil {
			return err
		}
		return printJSON(campaign)

	case "request":
		campaignID := fs.String("campaign", "", "campaign id")
		influencerID := fs.String("influencer", "", "influencer user id")
		budget := fs.Int("budget", -1, "offered budget, omitted when negative")
		_ = fs.Parse(args)

		cID, err := uuid.Parse(*campaignID)
		if err != nil {
			return fmt.Errorf("invalid -campaign: %w", err)
		}
		iID, err := uuid.Parse(*influencerID)
		if err != nil {
			return fmt.Errorf("invalid -influencer: %w", err)
		}
		if err := signIn(); err != nil {
			return err
		}
		var b *int
		if *budget >= 0 {
			b = budget
		}
		cr, err := app.API.CreateCampaignRequest(ctx, cID, iID, b)
		if err != nil {
			return err
		}
		return printJSON(cr)

	case "status":
		requestID := fs.String("request", "", "campaign request id")
		to := fs.String("to", "", "accepted, rejected or completed")
		_ = fs.Parse(args)

		id, err := uuid.Parse(*requestID)
		if err != nil {
			return fmt.Errorf("invalid -request: %w", err)
		}
		if err := signIn(); err != nil {
			return err
		}
		cr, err := app.API.UpdateRequestStatus(ctx, id, *to)
		if err != nil {
			return err
		}
		return printJSON(cr)

	case "contact":
		subject := fs.String("subject", "", "subject")
		content := fs.String("content", "", "message body")
		_ = fs.Parse(args)

		if err := signIn(); err != nil {
			return err
		}
		m, err := app.API.SendMessage(ctx, *subject, *content)
		if err != nil {
			return err
		}
		return printJSON(m)

	case "ticket":
		req := dto.CreateSupportTicketRequest{}
		fs.StringVar(&req.Email, "email", cfg.Email, "reply address")
		fs.StringVar(&req.IssueType, "type", "feedback", "feedback, bug_report or other")
		fs.StringVar(&req.Subject, "subject", "", "subject")
		fs.StringVar(&req.Description, "description", "", "description")
		_ = fs.Parse(args)

		t, err := app.API.CreateSupportTicket(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(t)

	case "watch":
		interval := fs.Duration("interval", cfg.PollInterval, "poll interval")
		_ = fs.Parse(args)

		if err := signIn(); err != nil {
			return err
		}
		u, _ := app.Store.User()
		if u.Role != models.RoleInfluencer {
			return errors.New("watch needs an influencer account")
		}
		poller := client.NewPoller(app.API, *interval, log)
		poller.Run(ctx, u.ID, func(s models.NotificationSummary) {
			fmt.Printf("%s  %d pending\n", time.Now().Format(time.TimeOnly), s.PendingCount)
			for _, p := range s.Previews {
				fmt.Printf("  - %s (%s)\n", p.Campaign.ProductName, p.ID)
			}
		})
		return app.Logout(context.Background())

	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
