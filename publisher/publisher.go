// Package publisher submits member posts to LinkedIn.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/blogem/linkedin-agent/models"
)

const (
	defaultPostsURL = "https://api.linkedin.com/v2/ugcPosts"
	defaultTimeout  = 30 * time.Second
	maxBodyLen      = 64 << 10
)

// Publisher submits text on behalf of an author and returns the post identifier
type Publisher interface {
	Publish(ctx context.Context, accessToken, authorURN, text string) (string, error)
}

// PersonURN derives the LinkedIn author identifier from the OpenID subject
func PersonURN(externalID string) string {
	return "urn:li:person:" + externalID
}

// LinkedInPublisher implements Publisher on the UGC Posts API
type LinkedInPublisher struct {
	postsURL   string
	httpClient *http.Client
	timeout    time.Duration
}

// NewLinkedInPublisher creates a publisher; empty postsURL uses the public API
func NewLinkedInPublisher(postsURL string, timeout time.Duration, httpClient *http.Client) *LinkedInPublisher {
	if postsURL == "" {
		postsURL = defaultPostsURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &LinkedInPublisher{
		postsURL:   postsURL,
		httpClient: httpClient,
		timeout:    timeout,
	}
}

type ugcPost struct {
	Author          string          `json:"author"`
	LifecycleState  string          `json:"lifecycleState"`
	SpecificContent specificContent `json:"specificContent"`
	Visibility      visibility      `json:"visibility"`
}

type specificContent struct {
	ShareContent shareContent `json:"com.linkedin.ugc.ShareContent"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type shareCommentary struct {
	Text string `json:"text"`
}

type visibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

// Publish posts text publicly as authorURN
func (p *LinkedInPublisher) Publish(ctx context.Context, accessToken, authorURN, text string) (string, error) {
	body, err := json.Marshal(ugcPost{
		Author:         authorURN,
		LifecycleState: "PUBLISHED",
		SpecificContent: specificContent{ShareContent: shareContent{
			ShareCommentary:    shareCommentary{Text: text},
			ShareMediaCategory: "NONE",
		}},
		Visibility: visibility{MemberNetworkVisibility: "PUBLIC"},
	})
	if err != nil {
		return "", errors.Join(models.ErrPublish, fmt.Errorf("marshal post: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.postsURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Join(models.ErrPublish, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	client := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, p.httpClient),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
	)
	resp, err := client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", errors.Join(models.ErrPublish, models.ErrTimeout, err)
		}
		return "", errors.Join(models.ErrPublish, fmt.Errorf("post ugc: %w", err))
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyLen))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", models.Upstream(models.ErrPublish, resp.StatusCode, string(respBody))
	}

	if id := resp.Header.Get("X-RestLi-Id"); id != "" {
		return id, nil
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &created); err == nil && created.ID != "" {
		return created.ID, nil
	}
	return "", models.Upstream(models.ErrPublish, resp.StatusCode, "response carried no post id: "+string(respBody))
}
