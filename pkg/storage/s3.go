package storage

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3FileStore uploads public-read objects to a bucket.
type S3FileStore struct {
	bucket    string
	publicURL string
	uploader  *s3manager.Uploader
}

// NewS3FileStore builds the uploader from the default AWS credential chain.
// When publicURL is empty objects are addressed on the bucket's virtual host.
func NewS3FileStore(bucket, region, publicURL string) (*S3FileStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	if publicURL == "" {
		publicURL = "https://" + bucket + ".s3." + region + ".amazonaws.com/"
	}
	if !strings.HasSuffix(publicURL, "/") {
		publicURL += "/"
	}

	return &S3FileStore{
		bucket:    bucket,
		publicURL: publicURL,
		uploader:  s3manager.NewUploader(sess),
	}, nil
}

func (s *S3FileStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		ACL:         aws.String("public-read"),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", err
	}
	return s.publicURL + key, nil
}
