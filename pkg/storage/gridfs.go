package storage

import (
	"context"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSFileStore keeps uploads in a MongoDB GridFS bucket named "media".
type GridFSFileStore struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewGridFSFileStore(db *mongo.Database, baseURL string) (*GridFSFileStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("media"))
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &GridFSFileStore{bucket: bucket, baseURL: baseURL}, nil
}

func (s *GridFSFileStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if _, err := s.bucket.UploadFromStream(key, body, opts); err != nil {
		return "", err
	}
	return s.baseURL + key, nil
}

// Open streams a stored file back by key.
func (s *GridFSFileStore) Open(ctx context.Context, key string) (*gridfs.DownloadStream, error) {
	return s.bucket.OpenDownloadStreamByName(key)
}
