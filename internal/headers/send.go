package headers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Sender issues requests carrying the stored header fields.
type Sender struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewSender(timeout time.Duration) *Sender {
	return &Sender{Client: cleanhttp.DefaultClient(), Timeout: timeout}
}

// Response is the part of an HTTP response the console prints.
type Response struct {
	Proto  string
	Status string
	Header http.Header
}

// BuildRequest creates a GET for path on the profile's host. A host without a
// scheme is reached over plain http.
func BuildRequest(ctx context.Context, p Profile, path string) (*http.Request, error) {
	host := strings.TrimSpace(p.Host)
	if host == "" {
		return nil, fmt.Errorf("host is not set")
	}
	base := host
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	base = strings.TrimRight(base, "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if p.Auth != "" {
		req.Header.Set(Auth.Header(), p.Auth)
	}
	if p.MaxForwards != "" {
		req.Header.Set(MaxForwards.Header(), p.MaxForwards)
	}
	if p.Referer != "" {
		req.Header.Set(Referer.Header(), p.Referer)
	}
	if p.UserAgent != "" {
		req.Header.Set(UserAgent.Header(), p.UserAgent)
	}
	return req, nil
}

// Send performs the request for path and returns the response headers. The
// body is drained and discarded.
func (s *Sender) Send(ctx context.Context, f *Fields, path string) (*Response, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	req, err := BuildRequest(ctx, f.Snapshot(), path)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", req.URL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return &Response{Proto: resp.Proto, Status: resp.Status, Header: resp.Header}, nil
}

// Print writes the status line and headers sorted by name.
func (r *Response) Print(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", r.Proto, r.Status)
	keys := make([]string, 0, len(r.Header))
	for k := range r.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range r.Header[k] {
			fmt.Fprintf(w, "%s: %s\n", k, v)
		}
	}
}
