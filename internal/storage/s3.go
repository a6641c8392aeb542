// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for
// exporting generated site DSL. It wraps the AWS SDK v2 and is configured
// for path-style access (required by CEPH/Hetzner).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"sitekit/internal/models"
	"sitekit/internal/slug"
)

const (
	exportPrefix      = "exports"
	exportExt         = ".dsl"
	exportContentType = "text/plain; charset=utf-8"

	untitledProject = "untitled"

	// exportURLExpiry bounds presigned export links when no public URL is set.
	exportURLExpiry = 24 * time.Hour
)

// ObjectAPI is the subset of the S3 client the export client needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client wraps an S3 client for export operations on a single bucket.
type Client struct {
	s3        ObjectAPI
	presigner *s3.PresignClient
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for exported files
}

// Export describes an uploaded generation.
type Export struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// New creates an S3 storage client configured for CEPH/Hetzner with
// path-style addressing. Returns (nil, nil) if endpoint or credentials
// are empty, allowing the app to start without storage.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required when endpoint is set")
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		presigner: s3.NewPresignClient(s3Client),
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// NewWithAPI builds a client around an existing object API. Presigning is
// unavailable on clients built this way, so export URLs always come from
// FileURL.
func NewWithAPI(api ObjectAPI, endpoint, bucket, publicURL string) *Client {
	return &Client{
		s3:        api,
		bucket:    bucket,
		endpoint:  strings.TrimRight(endpoint, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores an object in the export bucket with public-read ACL so it
// can be served directly.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for an exported file.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// presignedURL generates a pre-signed GET URL for an exported object.
func (c *Client) presignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if c.presigner == nil {
		return "", fmt.Errorf("s3 presign %s/%s: presigning not configured", c.bucket, key)
	}
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", c.bucket, key, err)
	}
	return req.URL, nil
}

// Bucket returns the name of the export bucket.
func (c *Client) Bucket() string {
	return c.bucket
}

// ExportKey builds the object key for a generation export:
// exports/<project-slug>/<template-id>.dsl. When the project name has no
// usable characters the folder is derived from the template ID instead.
func ExportKey(projectName, templateID string) string {
	fallback := slug.OrDefault(strings.ReplaceAll(templateID, "_", "-"), untitledProject)
	return exportPrefix + "/" + slug.OrDefault(projectName, fallback) + "/" + templateID + exportExt
}

// ExportGeneration uploads the customized DSL of a generation result and
// returns where it was stored. Without a public URL the returned link is
// presigned, since path-style bucket URLs are rarely readable anonymously.
func (c *Client) ExportGeneration(ctx context.Context, result *models.GenerationResult) (*Export, error) {
	key := ExportKey(result.Template.Name, result.Template.ID)
	body := []byte(result.FrontendDSL)
	if err := c.Upload(ctx, key, exportContentType, bytes.NewReader(body), int64(len(body))); err != nil {
		return nil, fmt.Errorf("export generation: %w", err)
	}
	url, err := c.exportURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("export generation: %w", err)
	}
	return &Export{Key: key, URL: url}, nil
}

// exportURL picks the link handed back for an uploaded export.
func (c *Client) exportURL(ctx context.Context, key string) (string, error) {
	if c.publicURL != "" || c.presigner == nil {
		return c.FileURL(key), nil
	}
	return c.presignedURL(ctx, key, exportURLExpiry)
}
