package arena

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// settle is how long the third-party page gets to animate between clicks;
// its transitions have no reliable completion signal to wait on.
const settle = 2 * time.Second

// Client owns one browser session against the game page.
type Client struct {
	cfg *Config
}

func NewClient(cfg *Config) *Client {
	return &Client{cfg: cfg}
}

// Start opens the game page, starts a match against the site AI at the
// configured difficulty, and captures a screenshot of the initial position.
func (c *Client) Start(ctx context.Context) error {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	log.Info().Str("url", c.cfg.URL).Msg("opening game page")
	var frames []*cdp.Node
	if err := chromedp.Run(ctx,
		chromedp.Navigate(c.cfg.URL),
		chromedp.WaitVisible(c.cfg.GameFrame, chromedp.ByQuery),
		chromedp.Nodes(c.cfg.GameFrame, &frames, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("failed to open game page: %w", err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("game iframe not found: %s", c.cfg.GameFrame)
	}
	frame := frames[0]

	if err := chromedp.Run(ctx,
		chromedp.Click(c.cfg.PlayAIButton, chromedp.ByQuery, chromedp.FromNode(frame)),
		chromedp.Sleep(settle),
		chromedp.Click(c.cfg.DifficultyButton, chromedp.ByQuery, chromedp.FromNode(frame)),
		chromedp.Sleep(settle),
	); err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	log.Info().Msg("match started against site AI")

	return c.screenshot(ctx)
}

func (c *Client) screenshot(ctx context.Context) error {
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if err := os.WriteFile(c.cfg.ScreenshotPath, buf, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	log.Info().Str("path", c.cfg.ScreenshotPath).Msg("screenshot saved")
	return nil
}
