package cambio

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// FlagCDN is the base URL flag images are served from.
var FlagCDN = "https://flagcdn.com"

// DefaultFlagWidth is the width, in pixels, of flag images.
const DefaultFlagWidth = 80

// Flag is how a region's flag is shown: an image URL or, when no image is available,
// a text fallback (the region code).
type Flag struct {
	URL      string
	Fallback string
}

// FlagURL returns the flag image URL of a region code.
func FlagURL(code string, width int) string {
	return fmt.Sprintf("%s/w%d/%s.png", FlagCDN, width, strings.ToLower(code))
}

// ResolveFlag checks that the flag image of code exists and falls back to the code
// itself otherwise. It never fails.
func ResolveFlag(ctx context.Context, client *http.Client, code string, width int) Flag {
	fallback := Flag{Fallback: strings.ToUpper(code)}
	if code == "" {
		return fallback
	}
	if client == nil {
		client = http.DefaultClient
	}
	addr := FlagURL(code, width)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, addr, nil)
	if err != nil {
		return fallback
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Debug("flag unavailable", "code", code, "err", err)
		return fallback
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("flag unavailable", "code", code, "status", resp.Status)
		return fallback
	}
	return Flag{URL: addr, Fallback: fallback.Fallback}
}
