// Package media keeps product images on an S3-compatible object store.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/polkiloo/ecomlite/internal/config"
	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Store uploads and removes images on the media host.
type Store interface {
	Upload(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error)
	Delete(ctx context.Context, publicID string) error
}

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store stores objects as "<folder>/<uuid><ext>"; the key doubles as public_id.
type S3Store struct {
	api       objectAPI
	bucket    string
	folder    string
	publicURL string
	logger    *slog.Logger
	newKey    func() string
}

// NewS3Store builds a store from media settings. A custom endpoint switches
// to path-style addressing so MinIO and similar hosts work.
func NewS3Store(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.MediaRegion)}
	if cfg.MediaAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load media config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.MediaEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.MediaEndpoint)
			o.UsePathStyle = true
		}
	})

	return newStore(client, cfg, logger), nil
}

func newStore(api objectAPI, cfg *config.Config, logger *slog.Logger) *S3Store {
	return &S3Store{
		api:       api,
		bucket:    cfg.MediaBucket,
		folder:    cfg.MediaFolder,
		publicURL: publicBaseURL(cfg),
		logger:    logger,
		newKey:    uuid.NewString,
	}
}

func publicBaseURL(cfg *config.Config) string {
	switch {
	case cfg.MediaPublicURL != "":
		return strings.TrimRight(cfg.MediaPublicURL, "/")
	case cfg.MediaEndpoint != "":
		return strings.TrimRight(cfg.MediaEndpoint, "/") + "/" + cfg.MediaBucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.MediaBucket, cfg.MediaRegion)
	}
}

// Upload puts the payload under the configured folder.
func (s *S3Store) Upload(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error) {
	key := path.Join(s.folder, s.newKey()+strings.ToLower(path.Ext(img.Filename)))

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.ContentType),
		ContentLength: aws.Int64(int64(len(img.Data))),
	})
	if err != nil {
		s.logger.Error("media upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, fmt.Errorf("upload image: %w", domainErrors.ErrUpstream)
	}

	return &model.StoredImage{URL: s.publicURL + "/" + key, PublicID: key}, nil
}

// Delete removes an object. S3 deletes are idempotent, so existence is
// checked first to report unknown handles.
func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		if isNotFound(err) {
			return domainErrors.ErrMediaNotFound
		}
		s.logger.Error("media lookup failed", slog.String("key", publicID), slog.String("error", err.Error()))
		return fmt.Errorf("lookup image: %w", domainErrors.ErrUpstream)
	}

	if _, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	}); err != nil {
		s.logger.Error("media delete failed", slog.String("key", publicID), slog.String("error", err.Error()))
		return fmt.Errorf("delete image: %w", domainErrors.ErrUpstream)
	}
	return nil
}

func isNotFound(err error) bool {
	var (
		notFound *types.NotFound
		noKey    *types.NoSuchKey
	)
	return errors.As(err, &notFound) || errors.As(err, &noKey)
}
