package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/postdeck/postdeck/configs"
)

// R2Storage stores uploads in a Cloudflare R2 bucket through the S3 API.
// Selected with STORAGE_BACKEND=r2.
type R2Storage struct {
	config cfg.R2
}

func NewR2Storage(r2 cfg.R2) *R2Storage {
	return &R2Storage{config: r2}
}

func (r *R2Storage) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
	}), nil
}

func (r *R2Storage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	client, err := r.client(ctx)
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		slog.Error(err.Error())
		return "", err
	}

	return fmt.Sprintf("%s/%s", r.config.PublicURL, filename), nil
}

func (r *R2Storage) Remove(ctx context.Context, filename string) error {
	client, err := r.client(ctx)
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.config.BucketName),
		Key:    aws.String(filename),
	})
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	return nil
}
