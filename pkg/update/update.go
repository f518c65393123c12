package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
)

const (
	LatestReleaseURL = "https://api.github.com/repos/ionut-t/tourbillon/releases/latest"
	checkFile        = ".update_check.json"
	defaultInterval  = 24 * time.Hour
)

// Release is the outcome of an update check.
type Release struct {
	Tag       string
	URL       string
	HasUpdate bool
	Cached    bool
}

type githubRelease struct {
	TagName    string `json:"tag_name"`
	ReleaseURL string `json:"html_url"`
}

// lastCheck is persisted so the API is queried at most once per interval.
type lastCheck struct {
	CheckedAt time.Time `json:"checked_at"`
	Tag       string    `json:"tag"`
	URL       string    `json:"url"`
}

type Checker struct {
	current  string
	storage  string
	url      string
	client   *http.Client
	interval time.Duration
	now      func() time.Time
}

type Option func(*Checker)

func WithURL(url string) Option {
	return func(c *Checker) { c.url = url }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

func WithInterval(d time.Duration) Option {
	return func(c *Checker) { c.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

func New(currentVersion, storage string, opts ...Option) *Checker {
	c := &Checker{
		current:  currentVersion,
		storage:  storage,
		url:      LatestReleaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		interval: defaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports the latest release, using the cached answer while it is
// younger than the check interval.
func (c *Checker) Check(ctx context.Context) (Release, error) {
	if last, ok := c.readLastCheck(); ok && c.now().Sub(last.CheckedAt) < c.interval {
		return Release{Tag: last.Tag, URL: last.URL, HasUpdate: c.isNewer(last.Tag), Cached: true}, nil
	}

	latest, err := c.fetch(ctx)
	if err != nil {
		return Release{}, err
	}

	if err := c.writeLastCheck(lastCheck{CheckedAt: c.now(), Tag: latest.TagName, URL: latest.ReleaseURL}); err != nil {
		return Release{}, fmt.Errorf("failed to save update check: %w", err)
	}

	return Release{Tag: latest.TagName, URL: latest.ReleaseURL, HasUpdate: c.isNewer(latest.TagName)}, nil
}

// isNewer is false for development builds and unparsable tags.
func (c *Checker) isNewer(tag string) bool {
	if !semver.IsValid(c.current) || !semver.IsValid(tag) {
		return false
	}
	return semver.Compare(c.current, tag) < 0
}

func (c *Checker) fetch(ctx context.Context) (githubRelease, error) {
	var release githubRelease

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return release, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "tourbillon-update-checker")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return release, fmt.Errorf("failed to fetch release info: %w", err)
	}

	//nolint:errcheck
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return release, fmt.Errorf("release API returned status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return release, fmt.Errorf("failed to decode release info: %w", err)
	}

	if release.TagName == "" {
		return release, errors.New("release info has no tag")
	}

	return release, nil
}

func (c *Checker) readLastCheck() (lastCheck, bool) {
	var last lastCheck

	data, err := os.ReadFile(filepath.Join(c.storage, checkFile))
	if err != nil {
		return last, false
	}

	if err := json.Unmarshal(data, &last); err != nil {
		return last, false
	}

	return last, true
}

func (c *Checker) writeLastCheck(last lastCheck) error {
	data, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.storage, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.storage, checkFile), data, 0o644)
}
