package pages

import (
	"testing"
	"time"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/pages/pagestest"
)

var testWaits = config.WaitConfig{Timeout: 50 * time.Millisecond, PollInterval: 5 * time.Millisecond}

// newTestSession returns a session over a fresh fake site whose base URL renders the home page
func newTestSession(t *testing.T) (*Session, *pagestest.Site) {
	t.Helper()
	site := pagestest.NewSite(homeMarker)
	return NewSession(site.Page(), testWaits), site
}
