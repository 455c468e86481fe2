// Package quran fetches random verses from the alquran.cloud REST API.
package quran

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "math/rand"
    "net/http"
    "os"
    "strings"
    "time"
)

const (
    defaultBaseURL = "http://api.alquran.cloud/v1"
    surahCount     = 114
)

// Verse is one ayah plus the reference needed to cite it.
type Verse struct {
    Text          string
    SurahName     string
    NumberInSurah int
}

// Quote renders the verse in the display format used across the service.
func (v Verse) Quote() string {
    return fmt.Sprintf("\"%s\" (Quran %s:%d)", v.Text, v.SurahName, v.NumberInSurah)
}

type Client struct {
    BaseURL    string
    HTTPClient *http.Client
}

// New returns a client for the configured Quran API (QURAN_API_URL, falling
// back to the public alquran.cloud endpoint) with a fixed request timeout.
func New() *Client {
    base := strings.TrimSpace(os.Getenv("QURAN_API_URL"))
    if base == "" { base = defaultBaseURL }
    return &Client{
        BaseURL:    strings.TrimRight(base, "/"),
        HTTPClient: &http.Client{Timeout: clientTimeout()},
    }
}

// RandomVerse picks a surah uniformly from [1,114], fetches it, and picks one
// of its ayahs uniformly. Any transport failure, non-2xx status or malformed
// body is returned as an error; callers decide how to degrade.
func (c *Client) RandomVerse(ctx context.Context) (Verse, error) {
    surah := 1 + rand.Intn(surahCount)
    return c.verseFrom(ctx, surah)
}

func (c *Client) verseFrom(ctx context.Context, surah int) (Verse, error) {
    url := fmt.Sprintf("%s/surah/%d", c.BaseURL, surah)
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil { return Verse{}, err }
    res, err := c.httpClient().Do(req)
    if err != nil { return Verse{}, err }
    defer res.Body.Close()
    if res.StatusCode < 200 || res.StatusCode >= 300 {
        return Verse{}, fmt.Errorf("quran api status %d for surah %d", res.StatusCode, surah)
    }
    var out struct {
        Data struct {
            EnglishName string `json:"englishName"`
            Ayahs       []struct {
                Text          string `json:"text"`
                NumberInSurah int    `json:"numberInSurah"`
            } `json:"ayahs"`
        } `json:"data"`
    }
    if err := json.NewDecoder(res.Body).Decode(&out); err != nil { return Verse{}, err }
    if len(out.Data.Ayahs) == 0 {
        return Verse{}, errors.New("quran api returned no ayahs")
    }
    a := out.Data.Ayahs[rand.Intn(len(out.Data.Ayahs))]
    return Verse{Text: a.Text, SurahName: out.Data.EnglishName, NumberInSurah: a.NumberInSurah}, nil
}

func (c *Client) httpClient() *http.Client {
    if c.HTTPClient != nil { return c.HTTPClient }
    return &http.Client{Timeout: clientTimeout()}
}

func clientTimeout() time.Duration {
    if v := os.Getenv("QURAN_HTTP_TIMEOUT_MS"); v != "" {
        if ms, err := time.ParseDuration(v + "ms"); err == nil { return ms }
    }
    return 10 * time.Second
}
