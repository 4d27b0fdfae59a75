package headers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-getter"
	"github.com/hashicorp/go-safetemp"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Profile is a saved set of header values, stored as HCL:
//
//	host      = "example.com"
//	useragent = "webwasp/0.1"
type Profile struct {
	Host        string `hcl:"host,optional"`
	Auth        string `hcl:"auth,optional"`
	MaxForwards string `hcl:"maxforward,optional"`
	Referer     string `hcl:"referer,optional"`
	UserAgent   string `hcl:"useragent,optional"`
}

func (p Profile) values() [numFields]string {
	return [numFields]string{p.Host, p.Auth, p.MaxForwards, p.Referer, p.UserAgent}
}

func profileFrom(v [numFields]string) Profile {
	return Profile{Host: v[Host], Auth: v[Auth], MaxForwards: v[MaxForwards], Referer: v[Referer], UserAgent: v[UserAgent]}
}

// LoadProfile parses an HCL profile file.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return p, fmt.Errorf("parse profile %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(f.Body, nil, &p); diags.HasErrors() {
		return p, fmt.Errorf("decode profile %s: %w", path, diags)
	}
	return p, nil
}

// FetchProfile loads a profile from a local path or any go-getter source
// (http(s) URL, git, s3, ...). Remote sources are downloaded into a
// temporary directory under tmpRoot that is removed before returning.
func FetchProfile(ctx context.Context, source, tmpRoot string) (Profile, error) {
	s := strings.TrimSpace(source)
	if s == "" {
		return Profile{}, fmt.Errorf("empty profile source")
	}
	if isLikelyLocalPath(s) {
		return LoadProfile(strings.TrimPrefix(s, "file://"))
	}
	if tmpRoot == "" {
		tmpRoot = os.TempDir()
	}
	if err := os.MkdirAll(tmpRoot, 0o700); err != nil {
		return Profile{}, fmt.Errorf("temp root: %w", err)
	}
	tmpDir, cleanup, err := safetemp.Dir(tmpRoot, "webwasp-profile-")
	if err != nil {
		return Profile{}, fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = cleanup.Close() }()

	dst := filepath.Join(tmpDir, "profile.hcl")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  s,
		Dst:  dst,
		Pwd:  mustGetwd(),
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"http":  &getter.HttpGetter{Netrc: true, Client: defaultHTTPClient()},
			"https": &getter.HttpGetter{Netrc: true, Client: defaultHTTPClient()},
			"git":   &getter.GitGetter{},
			"file":  &getter.FileGetter{Copy: true},
		},
	}
	if err := client.Get(); err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return LoadProfile(dst)
}

func defaultHTTPClient() *http.Client {
	return cleanhttp.DefaultClient()
}

func mustGetwd() string {
	wd, _ := os.Getwd()
	return wd
}

func isLikelyLocalPath(s string) bool {
	if strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") || strings.HasPrefix(s, "/") {
		return true
	}
	if strings.HasPrefix(s, "file://") {
		return true
	}
	// An existing file wins over getter source detection.
	if fi, err := os.Stat(s); err == nil && !fi.IsDir() {
		return true
	}
	return false
}
