package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/matt-dz/foodgram/internal/metrics"
)

const s3BreakerName = "s3-filestore"

type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicURL is the origin the bucket is reachable at by clients. Defaults
	// to the endpoint.
	PublicURL string
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// S3Store keeps images in an S3 compatible bucket.
type S3Store struct {
	client    *minio.Client
	bucket    string
	publicURL string
	cb        *gobreaker.CircuitBreaker[minio.UploadInfo]
	logger    *slog.Logger
}

var _ FileStoreInterface = (*S3Store)(nil)

func NewS3Store(opts S3Options) (*S3Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:    opts.UseSSL,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	publicURL := opts.PublicURL
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + opts.Endpoint
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	metrics.CircuitBreakerState.WithLabelValues(s3BreakerName).Set(0)

	return &S3Store{
		client:    client,
		bucket:    opts.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		cb:        newBreaker(s3BreakerName, logger),
		logger:    logger,
	}, nil
}

func newBreaker(name string, logger *slog.Logger) *gobreaker.CircuitBreaker[minio.UploadInfo] {
	return gobreaker.NewCircuitBreaker[minio.UploadInfo](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: func(err error) bool {
			// NoSuchKey does not count against the backend.
			return err == nil || minio.ToErrorResponse(err).Code == "NoSuchKey"
		},
	})
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Store) WriteRecipeImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error) {
	return s.put(ctx, recipeImageKey(generateKeyID(), suffix), data)
}

func (s *S3Store) WriteAvatarImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error) {
	return s.put(ctx, avatarImageKey(generateKeyID(), suffix), data)
}

func (s *S3Store) put(ctx context.Context, key string, data []byte) (string, int, error) {
	info, err := s.execute(func() (minio.UploadInfo, error) {
		return s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: mimetype.Detect(data).String()})
	})
	if err != nil {
		return "", 0, fmt.Errorf("uploading %q: %w", key, err)
	}
	return key, int(info.Size), nil
}

func (s *S3Store) DeleteKey(ctx context.Context, key string) error {
	_, err := s.execute(func() (minio.UploadInfo, error) {
		return minio.UploadInfo{}, s.client.RemoveObject(ctx, s.bucket, strings.TrimLeft(key, "/"), minio.RemoveObjectOptions{})
	})
	if err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *S3Store) FileURL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + strings.TrimLeft(key, "/")
}

func (s *S3Store) execute(fn func() (minio.UploadInfo, error)) (minio.UploadInfo, error) {
	info, err := s.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(s3BreakerName, "rejected").Inc()
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(s3BreakerName, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(s3BreakerName, "success").Inc()
	}
	return info, err
}
