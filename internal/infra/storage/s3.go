package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/niya-shroff/folio/internal/config"
)

// S3Store uploads admin media into the site's asset bucket and hands back
// the public URL that goes into the database row.
type S3Store struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewS3Store(ctx context.Context, conf config.Storage) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %v", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		uploader:  manager.NewUploader(s3Client),
		bucket:    conf.Bucket,
		publicURL: strings.TrimSuffix(conf.PublicURL, "/"),
	}, nil
}

// Upload streams the body into the bucket under key and returns the public
// URL of the stored object.
func (s *S3Store) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %v", key, err)
	}

	return s.publicURL + "/" + key, nil
}
