package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Client holds the configuration for the S3-compatible object store
// (Cloudflare R2) where uploaded study material lives.
type Client struct {
	s3Client   *s3.Client
	bucketName string
}

// NewClient creates a new storage client from environment variables. It
// returns (nil, nil) when the variables are not fully configured, allowing
// the application to come up with the file_path flow disabled.
func NewClient(ctx context.Context) (*Client, error) {
	accountID := os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	bucketName := os.Getenv("R2_BUCKET_NAME")
	accessKeyID := os.Getenv("R2_ACCESS_KEY_ID")
	secretAccessKey := os.Getenv("R2_SECRET_ACCESS_KEY")

	if accountID == "" || bucketName == "" || accessKeyID == "" || secretAccessKey == "" {
		log.Println("WARN: R2 environment variables not fully configured (CLOUDFLARE_ACCOUNT_ID, R2_BUCKET_NAME, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY). File storage will be unavailable.")
		return nil, nil
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	log.Printf("INFO: Storage client initialized for bucket '%s'", bucketName)
	return &Client{
		s3Client:   s3.NewFromConfig(cfg),
		bucketName: bucketName,
	}, nil
}

// Upload stores content under "uploads/<userID>/<uuid>_<filename>" and
// returns the object key, which callers later pass back as file_path.
func (c *Client) Upload(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (string, error) {
	objectKey := fmt.Sprintf("uploads/%s/%s_%s", userID.String(), uuid.New().String(), filename)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey),
		Body:   content,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file (key: %s): %w", objectKey, err)
	}

	log.Printf("INFO: Uploaded file to storage: %s", objectKey)
	return objectKey, nil
}

// Download retrieves an object by key and returns its bytes.
func (c *Client) Download(ctx context.Context, objectKey string) ([]byte, error) {
	out, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download file (key: %s): %w", objectKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body (key: %s): %w", objectKey, err)
	}
	return data, nil
}
