package conjugation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single lookup round trip. The upstream design
// left hangs unbounded; here the fetch always times out.
const DefaultTimeout = 10 * time.Second

// conjugationSite is the third-party page the proxy forwards to.
const conjugationSite = "https://leconjugueur.lefigaro.fr/conjugaison/verbe/%s.html"

// Ensure Client implements Lookuper at compile time.
var _ Lookuper = (*Client)(nil)

// Client fetches conjugation pages through a CORS proxy and scrapes the
// tense tables out of the returned HTML.
type Client struct {
	http      *http.Client
	proxyBase string
	limiter   *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client (used in tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a Client that routes requests through proxyBase.
// Lookups are rate limited to one per second with a small burst; the
// upstream is somebody else's website.
func NewClient(proxyBase string, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		proxyBase: proxyBase,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches and parses the conjugation of verb.
func (c *Client) Lookup(ctx context.Context, verb string) (*Conjugation, error) {
	if err := ValidateVerb(verb); err != nil {
		return nil, err
	}
	verb = Normalize(verb)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	target := fmt.Sprintf(conjugationSite, url.PathEscape(verb))
	reqURL := c.proxyBase + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	conj, err := parsePage(string(body), verb)
	if err != nil {
		return nil, err
	}
	return conj, nil
}

// parsePage scrapes the tense blocks out of a conjugation page. The
// selectors track the third party's current markup: one div.conjugBloc
// per tense, the tense name in div.tempsBloc, one form per line with the
// inflected part wrapped in <b>.
func parsePage(html, verb string) (*Conjugation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %v", ErrUnavailable, err)
	}

	conj := &Conjugation{Infinitive: verb}

	doc.Find("div.conjugBloc").Each(func(_ int, block *goquery.Selection) {
		name := strings.TrimSpace(block.Find("div.tempsBloc").First().Text())
		if name == "" {
			return
		}

		var forms []string
		for _, line := range strings.Split(block.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || line == name {
				continue
			}
			forms = append(forms, line)
		}
		if len(forms) == 0 {
			return
		}
		conj.Tenses = append(conj.Tenses, Tense{Name: name, Forms: forms})
	})

	if len(conj.Tenses) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, verb)
	}
	return conj, nil
}
