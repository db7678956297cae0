package scryfall

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// SanitizeName makes a card name safe to use as a filename.
func SanitizeName(s string) string {
	s = unsafeChars.ReplaceAllString(s, "_")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// PickImages selects the image URLs for a card: a single unnamed entry
// for one-faced cards, "front"/"back" entries for double-faced ones,
// and the generic per-card image endpoint as a last resort. Returns
// nil when the card has no image at all.
func (c *Client) PickImages(card Card, version string) map[string]string {
	pick := func(uris map[string]string) string {
		if uris == nil {
			return ""
		}
		for _, key := range []string{version, "png", "large", "normal"} {
			if u := uris[key]; u != "" {
				return u
			}
		}
		return ""
	}

	if u := pick(card.ImageURIs); u != "" {
		return map[string]string{"": u}
	}

	if len(card.CardFaces) > 0 {
		out := map[string]string{}
		for i, face := range card.CardFaces {
			u := pick(face.ImageURIs)
			if u == "" {
				continue
			}
			side := "back"
			if i == 0 {
				side = "front"
			}
			out[side] = u
		}
		if len(out) > 0 {
			return out
		}
	}

	if card.ID != "" {
		return map[string]string{
			"": fmt.Sprintf("%s/cards/%s?format=image&version=%s",
				c.BaseURL, url.PathEscape(card.ID), url.QueryEscape(version)),
		}
	}
	return nil
}

// Download streams the resource at rawURL to path, creating parent
// directories as needed.
func (c *Client) Download(rawURL, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image request: HTTP %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("streaming %s: %w", path, err)
	}
	return f.Close()
}

// DownloadImages fetches the chosen image of every card into
// outDir/<SET>/<num> - <name> (<SET>).<ext>, one folder per set.
// Failures are logged and skipped; the count of stored files is
// returned.
func (c *Client) DownloadImages(cards []Card, version, outDir string) int {
	ext := ".jpg"
	if version == "png" {
		ext = ".png"
	}

	total := 0
	for _, card := range cards {
		setCode := strings.ToUpper(card.Set)
		num := card.CollectorNumber
		if num == "" {
			num = "?"
		}
		name := card.Name
		if name == "" {
			name = "Unknown"
		}
		base := fmt.Sprintf("%s - %s (%s)", num, SanitizeName(name), setCode)

		chosen := c.PickImages(card, version)
		if chosen == nil {
			c.logger.Warn("card has no image",
				zap.String("card", name),
				zap.String("set", setCode),
				zap.String("number", num))
			continue
		}

		for side, imgURL := range chosen {
			filename := base + ext
			if side != "" {
				filename = fmt.Sprintf("%s - %s%s", base, side, ext)
			}
			path := filepath.Join(outDir, setCode, filename)

			if err := c.Download(imgURL, path); err != nil {
				c.logger.Warn("skipping card image",
					zap.String("card", name),
					zap.String("set", setCode),
					zap.String("number", num),
					zap.Error(err))
			} else {
				total++
			}
			time.Sleep(c.Delay)
		}
	}
	return total
}

// WriteCardList writes one "Name (SET) number" line per card to path.
func WriteCardList(cards []Card, path string) error {
	var b strings.Builder
	for _, card := range cards {
		fmt.Fprintf(&b, "%s (%s) %s\n", card.Name, strings.ToUpper(card.Set), card.CollectorNumber)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing card list: %w", err)
	}
	return nil
}
