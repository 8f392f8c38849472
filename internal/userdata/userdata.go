// Package userdata resolves instance boot-script payloads by logical name from
// a local directory or an S3 prefix.
package userdata

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"tasnim.dev/netlab/internal/cloud"
)

// DefaultDir is where payloads are looked up when no source is configured.
const DefaultDir = "user-data"

// MaxSize is the EC2 limit for raw user data.
const MaxSize = 16 * 1024

type Provider interface {
	Load(ctx context.Context, name string) (string, error)
}

// ObjectGetter is satisfied by the S3 client.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// New picks a provider for source: "s3://bucket/prefix" or a directory path.
func New(source string, getter ObjectGetter) (Provider, error) {
	if source == "" {
		source = DefaultDir
	}
	if !strings.HasPrefix(source, "s3://") {
		return NewDirProvider(source), nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing user-data source %q: %w", source, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("user-data source %q has no bucket", source)
	}
	if getter == nil {
		return nil, errors.New("S3 user-data source needs an S3 client")
	}
	return NewS3Provider(getter, u.Host, strings.Trim(u.Path, "/")), nil
}

type DirProvider struct {
	dir string
}

func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{dir: dir}
}

func (p *DirProvider) Load(_ context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	file := filepath.Join(p.dir, name)
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("user data %s: %w", file, cloud.ErrNotFound)
		}
		return "", fmt.Errorf("reading user data %s: %w", file, err)
	}
	return validate(file, data)
}

type S3Provider struct {
	api    ObjectGetter
	bucket string
	prefix string
}

func NewS3Provider(api ObjectGetter, bucket, prefix string) *S3Provider {
	return &S3Provider{api: api, bucket: bucket, prefix: prefix}
}

func (p *S3Provider) Load(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	key := path.Join(p.prefix, name)
	data, err := p.api.GetObject(ctx, p.bucket, key)
	if err != nil {
		return "", fmt.Errorf("user data %s: %w", name, err)
	}
	return validate("s3://"+p.bucket+"/"+key, data)
}

// checkName rejects anything that is not a bare file name.
func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid user-data name %q", name)
	}
	return nil
}

func validate(where string, data []byte) (string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("user data %s is empty", where)
	}
	if len(data) > MaxSize {
		return "", fmt.Errorf("user data %s is %d bytes, limit is %d", where, len(data), MaxSize)
	}
	return string(data), nil
}
