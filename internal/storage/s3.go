package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Storage implements Storage for AWS S3 and Cloudflare R2.
// R2 is S3-compatible, so we use the same SDK
type S3Storage struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	bucket     string
	baseURL    string
	publicRead bool
}

// NewS3Storage creates a new S3 or R2 storage instance
func NewS3Storage(cfg Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required for %s storage", cfg.Type)
	}

	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}

	if cfg.Type == "cloudflare_r2" {
		// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("endpoint is required for Cloudflare R2")
		}
		awsConfig.Region = aws.String("auto")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s session: %w", cfg.Type, err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Type == "cloudflare_r2" {
			baseURL = fmt.Sprintf("https://%s.r2.dev", cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3Storage{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		bucket:     cfg.Bucket,
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicRead: cfg.PublicRead,
	}, nil
}

// Save uploads a file to the bucket
func (s *S3Storage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	input := &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	}
	if s.publicRead {
		input.ACL = aws.String(s3.ObjectCannedACLPublicRead)
	}

	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return nil
}

// Delete removes a file from the bucket
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	if _, err := s.client.DeleteObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to delete from bucket: %w", err)
	}

	return nil
}

// GetURL returns a public URL, or a presigned one for private buckets
func (s *S3Storage) GetURL(ctx context.Context, key string) (string, error) {
	if s.publicRead {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}

	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(presignExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

func (s *S3Storage) KeyFromURL(url string) (string, bool) {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return trimBase(s.baseURL, url)
}
