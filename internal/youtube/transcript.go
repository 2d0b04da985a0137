package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	videoIDPattern   = `(?:youtube\.com\/(?:[^\/]+\/.+\/|(?:v|e(?:mbed)?)\/|.*[?&]v=)|youtu\.be\/)([^"&?\/\s]{11})`
	timedTextPattern = `<text start="([^"]*)" dur="([^"]*)">([^<]*)<\/text>`
)

// ErrTranscriptUnavailable is returned when no caption track can be fetched
// for the given URL.
var ErrTranscriptUnavailable = errors.New("transcript unavailable")

var (
	videoIDRe   = regexp.MustCompile(videoIDPattern)
	timedTextRe = regexp.MustCompile(timedTextPattern)
	titleRe     = regexp.MustCompile(`<title>(.+?) - YouTube</title>`)
)

// Fragment is one caption fragment of a transcript track.
type Fragment struct {
	Text string `json:"text"`
}

// Client fetches caption tracks from YouTube's watch pages.
type Client struct {
	httpClient *http.Client
}

// New returns a transcript client with a bounded request timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetTranscript fetches the first available caption track for the video URL
// and flattens it into plain text, joining fragments with single spaces.
// It also returns the video title when one can be found on the watch page.
func (c *Client) GetTranscript(ctx context.Context, url string) (string, string, error) {
	videoID, err := retrieveVideoID(url)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrTranscriptUnavailable, err)
	}

	fragments, title, err := c.fetchTranscript(ctx, videoID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrTranscriptUnavailable, err)
	}

	return JoinFragments(fragments), title, nil
}

// JoinFragments flattens caption fragments into one string, in original
// order, with a single space between fragments. Absent text counts as empty.
func JoinFragments(fragments []Fragment) string {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = html.UnescapeString(f.Text)
	}
	return strings.Join(texts, " ")
}

func (c *Client) fetchTranscript(ctx context.Context, videoID string) ([]Fragment, string, error) {
	pageBody, err := c.get(ctx, fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID))
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch video page: %w", err)
	}

	var title string
	if m := titleRe.FindSubmatch(pageBody); len(m) > 1 {
		title = html.UnescapeString(string(m[1]))
	}

	splitHTML := strings.Split(string(pageBody), `"captions":`)
	if len(splitHTML) <= 1 {
		return nil, "", fmt.Errorf("no captions available for video %s", videoID)
	}

	var captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}

	end := strings.Index(splitHTML[1], `,"videoDetails`)
	if end < 0 {
		return nil, "", fmt.Errorf("failed to locate captions data for video %s", videoID)
	}
	if err := json.Unmarshal([]byte(splitHTML[1][:end]), &captions); err != nil {
		return nil, "", fmt.Errorf("failed to parse captions data: %w", err)
	}

	tracks := captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, "", fmt.Errorf("no transcripts available for video %s", videoID)
	}

	// Whatever track the upstream lists first; no language negotiation.
	trackBody, err := c.get(ctx, tracks[0].BaseURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch transcript: %w", err)
	}

	var fragments []Fragment
	for _, match := range timedTextRe.FindAllStringSubmatch(string(trackBody), -1) {
		fragments = append(fragments, Fragment{Text: match[3]})
	}
	if len(fragments) == 0 {
		return nil, "", fmt.Errorf("caption track for video %s is empty", videoID)
	}

	return fragments, title, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func retrieveVideoID(url string) (string, error) {
	if len(url) == 11 && !strings.ContainsAny(url, "./?&") {
		return url, nil
	}
	if match := videoIDRe.FindStringSubmatch(url); match != nil {
		return match[1], nil
	}
	return "", errors.New("invalid YouTube URL or video ID")
}
