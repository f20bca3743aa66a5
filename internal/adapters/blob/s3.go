package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"ratedesk/internal/domain/document"
)

// S3Store implements Store using an S3-compatible backend. Objects are
// stored under {prefix}/{pathname}.
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string // public base URL for served objects
}

// NewS3Store creates a new S3Store. baseURL is the public URL root under
// which objects are served, without a trailing slash.
func NewS3Store(client *s3.Client, bucket, prefix, baseURL string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// objectKey returns the full S3 key for a pathname.
func (s *S3Store) objectKey(pathname string) string {
	return path.Join(s.prefix, pathname)
}

// publicURL returns the serving URL for a pathname.
func (s *S3Store) publicURL(pathname string) string {
	return s.baseURL + "/" + pathname
}

// Put uploads an object. The body is buffered so S3 receives a known
// content length.
// PRE: pathname is a cleaned document path
// POST: Object stored; returns its pathname, URL and size
func (s *S3Store) Put(ctx context.Context, pathname string, body io.Reader, contentType string) (document.Object, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return document.Object{}, fmt.Errorf("failed to read object body: %w", err)
	}

	key := s.objectKey(pathname)
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   strings.NewReader(string(data)),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return document.Object{}, fmt.Errorf("failed to put object to S3: %w", err)
	}

	return document.Object{
		Pathname:   pathname,
		URL:        s.publicURL(pathname),
		Size:       int64(len(data)),
		UploadedAt: time.Now(),
	}, nil
}

// Exists reports whether an object with exactly this pathname exists.
func (s *S3Store) Exists(ctx context.Context, pathname string) (bool, error) {
	key := s.objectKey(pathname)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to head object %q: %w", pathname, err)
	}
	return true, nil
}

// ListPrefix returns every object under the prefix, following continuation
// tokens so a large folder never truncates.
// POST: Returns all matching objects with pathnames relative to the store prefix
func (s *S3Store) ListPrefix(ctx context.Context, prefix string) ([]document.Object, error) {
	fullPrefix := s.objectKey(prefix)

	var objects []document.Object
	var continuation *string
	for {
		result, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &s.bucket,
			Prefix:            &fullPrefix,
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list objects from S3: %w", err)
		}

		for _, obj := range result.Contents {
			if obj.Key == nil {
				continue
			}
			pathname := *obj.Key
			if s.prefix != "" {
				pathname = strings.TrimPrefix(pathname, strings.TrimSuffix(s.prefix, "/")+"/")
			}
			var size int64
			if obj.Size != nil {
				size = *obj.Size
			}
			var uploadedAt time.Time
			if obj.LastModified != nil {
				uploadedAt = *obj.LastModified
			}
			objects = append(objects, document.Object{
				Pathname:   pathname,
				URL:        s.publicURL(pathname),
				Size:       size,
				UploadedAt: uploadedAt,
			})
		}

		if result.IsTruncated == nil || !*result.IsTruncated {
			break
		}
		continuation = result.NextContinuationToken
	}
	return objects, nil
}

// Delete removes the object at pathname. S3 DeleteObject succeeds for
// absent keys, which matches the Store contract.
func (s *S3Store) Delete(ctx context.Context, pathname string) error {
	key := s.objectKey(pathname)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

// Copy duplicates the object at src to dst.
func (s *S3Store) Copy(ctx context.Context, src, dst string) error {
	source := s.bucket + "/" + url.PathEscape(s.objectKey(src))
	dstKey := s.objectKey(dst)
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     &s.bucket,
		Key:        &dstKey,
		CopySource: &source,
	})
	if err != nil {
		return fmt.Errorf("failed to copy object %q to %q: %w", src, dst, err)
	}
	return nil
}
