package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	sc "github.com/emogo-app/emogo/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Gateway stores media on an S3-compatible backend (MinIO in development).
type S3Gateway struct {
	config *sc.Config
}

// NewS3Gateway returns a gateway configured from the server config.
func NewS3Gateway(config *sc.Config) *S3Gateway {
	return &S3Gateway{config: config}
}

func (g *S3Gateway) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(g.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			g.config.S3RootUser,     // MINIO_ROOT_USER
			g.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(g.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Upload writes data under key with a generous timeout; whole videos ride
// in one call.
func (g *S3Gateway) Upload(ctx context.Context, key string, data []byte) (*UploadResult, error) {
	client, err := g.getClient()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.MediaUploadTimeout)
	defer cancel()

	bucket := g.config.S3Bucket
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("video/mp4"),
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: g.objectURL(key), Key: key}, nil
}

// Delete removes one object. Used for best-effort cleanup of replaced media.
func (g *S3Gateway) Delete(ctx context.Context, key string) error {
	client, err := g.getClient()
	if err != nil {
		return err
	}

	bucket := g.config.S3Bucket
	_, err = deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	return err
}

// PresignGet returns a temporary GET URL valid for 15 minutes.
func (g *S3Gateway) PresignGet(ctx context.Context, key string, forceDownload bool) (string, error) {
	client, err := g.getClient()
	if err != nil {
		return "", err
	}

	presignClient := newS3PresignClient(client)

	bucket := g.config.S3Bucket
	in := &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if forceDownload {
		in.ResponseContentDisposition = aws.String("attachment")
	}

	req, err := presignGetObject(presignClient, ctx, in, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (g *S3Gateway) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(g.config.S3BaseEndpoint, "/"), g.config.S3Bucket, key)
}
