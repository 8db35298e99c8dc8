package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-crm/internal/config"
)

// S3Uploader publica os avatares processados. A URL devolvida é a que
// vai gravada no perfil do usuário.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
