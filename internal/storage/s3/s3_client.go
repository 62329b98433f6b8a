package s3

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"volumetrico/internal/config"
	"volumetrico/internal/domain"
	"volumetrico/internal/port"
)

// API is the subset of the S3 client the report source calls.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	s3.ListObjectsV2APIClient
	manager.DownloadAPIClient
}

type s3Source struct {
	api        API
	downloader *manager.Downloader
	bucket     string
	prefix     string
	maxBytes   int64
}

// NewReportSource creates an S3-backed ReportSource for the configured bucket.
func NewReportSource(ctx context.Context, cfg *config.StorageConfig, maxBytes int64) (port.ReportSource, error) {
	if !cfg.Enabled() {
		return nil, domain.ErrStorageUnavailable
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" || cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = true
		})
	}

	return NewReportSourceFromAPI(s3.NewFromConfig(awsCfg, s3Opts...), cfg.Bucket, cfg.Prefix, maxBytes), nil
}

// NewReportSourceFromAPI wraps an existing client. Keys passed to Download
// and List are resolved under prefix.
func NewReportSourceFromAPI(api API, bucket, prefix string, maxBytes int64) port.ReportSource {
	return &s3Source{
		api:        api,
		downloader: manager.NewDownloader(api),
		bucket:     bucket,
		prefix:     prefix,
		maxBytes:   maxBytes,
	}
}

func (c *s3Source) Download(ctx context.Context, key string) ([]byte, error) {
	fullKey := c.fullKey(key)

	head, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return nil, mapError("s3 head", fullKey, err)
	}

	size := aws.ToInt64(head.ContentLength)
	if c.maxBytes > 0 && size > c.maxBytes {
		return nil, fmt.Errorf("s3 object %s is %d bytes: %w", fullKey, size, domain.ErrFileTooLarge)
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	n, err := c.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return nil, mapError("s3 download", fullKey, err)
	}

	log.Printf("s3.ReportSource: downloaded s3://%s/%s (%d bytes)", c.bucket, fullKey, n)
	return buf.Bytes(), nil
}

func (c *s3Source) List(ctx context.Context, prefix string) ([]port.ObjectInfo, error) {
	paginator := s3.NewListObjectsV2Paginator(c.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(c.fullKey(prefix)),
	})

	var objects []port.ObjectInfo
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(strings.ToLower(key), ".json") {
				continue
			}
			objects = append(objects, port.ObjectInfo{
				Key:          strings.TrimPrefix(key, c.prefix),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (c *s3Source) fullKey(key string) string {
	if c.prefix == "" || strings.HasPrefix(key, c.prefix) {
		return key
	}
	return c.prefix + strings.TrimPrefix(key, "/")
}

func mapError(op, key string, err error) error {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return fmt.Errorf("%s %s: %w", op, key, domain.ErrNotFound)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", op, key, err)
	}
	return fmt.Errorf("%s %s: %w: %v", op, key, domain.ErrDownloadFailed, err)
}
