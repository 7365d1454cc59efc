/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package objectstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	aliyunoss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type oss struct {
	// OSS client.
	client *aliyunoss.Client
}

// New oss instance.
func newOSS(region, endpoint, accessKey, secretKey string) (ObjectStorage, error) {
	client, err := aliyunoss.New(endpoint, accessKey, secretKey, aliyunoss.Region(region))
	if err != nil {
		return nil, fmt.Errorf("new oss client failed: %s", err)
	}

	return &oss{client}, nil
}

// GetBucketMetadata returns metadata of bucket.
func (o *oss) GetBucketMetadata(ctx context.Context, bucketName string) (*BucketMetadata, error) {
	resp, err := o.client.GetBucketInfo(bucketName)
	if err != nil {
		return nil, err
	}

	return &BucketMetadata{
		Name:     resp.BucketInfo.Name,
		CreateAt: resp.BucketInfo.CreationDate,
	}, nil
}

// CreateBucket creates bucket of object storage.
func (o *oss) CreateBucket(ctx context.Context, bucketName string) error {
	return o.client.CreateBucket(bucketName)
}

// IsBucketExist returns whether the bucket exists.
func (o *oss) IsBucketExist(ctx context.Context, bucketName string) (bool, error) {
	return o.client.IsBucketExist(bucketName)
}

// GetObjectMetadata returns metadata of object.
func (o *oss) GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error) {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return nil, false, err
	}

	header, err := bucket.GetObjectDetailedMeta(objectKey)
	if err != nil {
		var serr aliyunoss.ServiceError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, false, nil
		}

		return nil, false, err
	}

	contentLength, err := strconv.ParseInt(header.Get(aliyunoss.HTTPHeaderContentLength), 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &ObjectMetadata{
		Key:                objectKey,
		ContentDisposition: header.Get(aliyunoss.HTTPHeaderContentDisposition),
		ContentEncoding:    header.Get(aliyunoss.HTTPHeaderContentEncoding),
		ContentLanguage:    header.Get("Content-Language"),
		ContentLength:      contentLength,
		ContentType:        header.Get(aliyunoss.HTTPHeaderContentType),
		ETag:               header.Get(aliyunoss.HTTPHeaderEtag),
		Digest:             header.Get(aliyunoss.HTTPHeaderOssMetaPrefix + MetaDigest),
	}, true, nil
}

// GetObject returns data of object.
func (o *oss) GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error) {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	return bucket.GetObject(objectKey)
}

// PutObject puts data of object.
func (o *oss) PutObject(ctx context.Context, bucketName, objectKey, digest, contentType string, reader io.Reader) error {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return err
	}

	options := []aliyunoss.Option{aliyunoss.Meta(MetaDigest, digest)}
	if contentType != "" {
		options = append(options, aliyunoss.ContentType(contentType))
	}

	return bucket.PutObject(objectKey, reader, options...)
}

// CopyObject copies object from source key to destination key inside one bucket.
func (o *oss) CopyObject(ctx context.Context, bucketName, sourceObjectKey, destinationObjectKey string) error {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return err
	}

	_, err = bucket.CopyObject(sourceObjectKey, destinationObjectKey)
	return err
}

// DeleteObject deletes data of object.
func (o *oss) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return err
	}

	return bucket.DeleteObject(objectKey)
}

// ListObjectMetadatas returns metadata of objects.
func (o *oss) ListObjectMetadatas(ctx context.Context, bucketName, prefix, marker string, limit int64) ([]*ObjectMetadata, error) {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	resp, err := bucket.ListObjects(aliyunoss.Prefix(prefix), aliyunoss.Marker(marker), aliyunoss.MaxKeys(int(limit)))
	if err != nil {
		return nil, err
	}

	var metadatas []*ObjectMetadata
	for _, object := range resp.Objects {
		metadatas = append(metadatas, &ObjectMetadata{
			Key:           object.Key,
			ETag:          object.ETag,
			ContentLength: object.Size,
		})
	}

	return metadatas, nil
}

// IsObjectExist returns whether the object exists.
func (o *oss) IsObjectExist(ctx context.Context, bucketName, objectKey string) (bool, error) {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return false, err
	}

	return bucket.IsObjectExist(objectKey)
}

// GetSignURL returns sign url of object.
func (o *oss) GetSignURL(ctx context.Context, bucketName, objectKey string, method Method, expire time.Duration) (string, error) {
	var ossHTTPMethod aliyunoss.HTTPMethod
	switch method {
	case MethodGet:
		ossHTTPMethod = aliyunoss.HTTPGet
	case MethodPut:
		ossHTTPMethod = aliyunoss.HTTPPut
	case MethodHead:
		ossHTTPMethod = aliyunoss.HTTPHead
	case MethodDelete:
		ossHTTPMethod = aliyunoss.HTTPDelete
	default:
		return "", fmt.Errorf("not support method %s", method)
	}

	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return "", err
	}

	return bucket.SignURL(objectKey, ossHTTPMethod, int64(expire.Seconds()))
}
