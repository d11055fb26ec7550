// Package s3 provides the object-store sink: artifacts are uploaded to an
// S3-compatible bucket through the MinIO client.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/registry"
)

// Name is the sink name used in build files.
const Name = "s3"

// Settings keys read from the sink block.
const (
	SettingEndpoint  = "endpoint"
	SettingBucket    = "bucket"
	SettingAccessKey = "access_key"
	SettingSecretKey = "secret_key"
	SettingRegion    = "region"
	SettingPrefix    = "prefix"
	SettingSecure    = "secure"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, NewSink)
}

// ObjectStore is the part of *minio.Client the sink uses.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
}

// Sink uploads artifacts under Prefix in Bucket.
type Sink struct {
	Store  ObjectStore
	Bucket string
	Region string
	Prefix string
	// Clean lists key prefixes, relative to Prefix, whose objects are
	// removed before uploading.
	Clean []string
}

// NewSink builds a Sink from the build file's sink block. It matches
// registry.SinkFactory.
func NewSink(_ context.Context, cfg registry.SinkConfig) (artifact.Sink, error) {
	s := cfg.Settings
	if s[SettingEndpoint] == "" {
		return nil, fmt.Errorf("s3 sink: %q is required", SettingEndpoint)
	}
	if s[SettingBucket] == "" {
		return nil, fmt.Errorf("s3 sink: %q is required", SettingBucket)
	}

	endpoint, secure, err := parseEndpoint(s[SettingEndpoint], s[SettingSecure])
	if err != nil {
		return nil, fmt.Errorf("s3 sink: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s[SettingAccessKey], s[SettingSecretKey], ""),
		Secure: secure,
		Region: s[SettingRegion],
	})
	if err != nil {
		return nil, fmt.Errorf("s3 sink: failed to create minio client: %w", err)
	}

	return &Sink{
		Store:  client,
		Bucket: s[SettingBucket],
		Region: s[SettingRegion],
		Prefix: strings.Trim(s[SettingPrefix], "/"),
		Clean:  cfg.Clean,
	}, nil
}

// parseEndpoint accepts "host:port" or a URL. An https URL forces TLS; an
// explicit secure setting applies otherwise, defaulting to TLS.
func parseEndpoint(raw, secureSetting string) (string, bool, error) {
	secure := true
	if secureSetting != "" {
		v, err := strconv.ParseBool(secureSetting)
		if err != nil {
			return "", false, fmt.Errorf("invalid %q value %q: %w", SettingSecure, secureSetting, err)
		}
		secure = v
	}

	if !strings.Contains(raw, "://") {
		return raw, secure, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		secure = true
	case "http":
		secure = false
	}
	return u.Host, secure, nil
}

// Write implements artifact.Sink.
func (s *Sink) Write(ctx context.Context, artifacts []artifact.Artifact) error {
	logger := ctxlog.FromContext(ctx).With("bucket", s.Bucket)

	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	for _, dir := range s.Clean {
		if err := s.removePrefix(ctx, s.key(dir)+"/"); err != nil {
			return err
		}
	}

	for _, a := range artifacts {
		data, err := a.Encode()
		if err != nil {
			return err
		}
		key := s.key(a.Path)
		_, err = s.Store.PutObject(ctx, s.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: ContentType(a.Path),
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}
		logger.Debug("Artifact uploaded.", "key", key, "bytes", len(data))
	}
	logger.Info("Uploaded artifacts.", "count", len(artifacts))
	return nil
}

func (s *Sink) ensureBucket(ctx context.Context) error {
	exists, err := s.Store.BucketExists(ctx, s.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.Store.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{Region: s.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.Bucket, err)
	}
	return nil
}

func (s *Sink) removePrefix(ctx context.Context, prefix string) error {
	for obj := range s.Store.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if err := s.Store.RemoveObject(ctx, s.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", obj.Key, err)
		}
	}
	return nil
}

func (s *Sink) key(p string) string {
	if s.Prefix == "" {
		return p
	}
	return path.Join(s.Prefix, p)
}

// ContentType guesses the MIME type of an artifact from its extension.
func ContentType(p string) string {
	switch ext := path.Ext(p); ext {
	case ".json":
		return "application/json"
	case ".xlf":
		return "application/x-xliff+xml"
	default:
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
		return "application/octet-stream"
	}
}
