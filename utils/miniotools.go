package utils

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/openhaul/loadboard/minio"
)

// UploadObject streams content into the document bucket.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// DownloadObject reads a whole object back as bytes.
func DownloadObject(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// PresignDownload returns a temporary GET URL for an object so the
// browser can fetch documents without going through the API.
func PresignDownload(ctx context.Context, objectName string, expiry time.Duration) (*url.URL, error) {
	return minio.Client.PresignedGetObject(ctx, minio.BucketName, objectName, expiry, nil)
}

// DeleteObject removes the object from the bucket.
func DeleteObject(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
