package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lushlooksbeauty/studio-api/internal/config"
)

// Uploader stores client reference photos and service images. Every
// upload is re-encoded to webp before it leaves the process.
type Uploader struct {
	client *s3.Client
	bucket string
}

func NewUploader(cfg *config.Config) *Uploader {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

// Upload re-encodes the image and writes it under the given prefix,
// returning the object key.
func (u *Uploader) Upload(ctx context.Context, prefix string, r io.Reader) (string, error) {
	encoded, err := EncodeWebP(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
