package urlconf

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/platinummonkey/envurl/pkg/literal"
)

const (
	awsDomain      = "amazonaws.com"
	s3HostMarker   = "s3"
	endpointScheme = "https://"
)

// S3Options configures S3 compatible object storage
type S3Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	KeyPrefix       string
	// EndpointURL is empty for AWS and set for other providers
	EndpointURL string
	// Extra holds every other query parameter, literal decoded
	Extra map[string]any
}

// parseS3Storage understands three host layouts:
//
//	s3.<region>.amazonaws.com/<bucket>/<prefix>         path-style
//	<bucket>.s3.<region>.amazonaws.com/<prefix>         virtual-hosted
//	<any other host>/<bucket>/<prefix>                  custom endpoint
func parseS3Storage(u *parsedURL) (*S3Options, error) {
	opts := &S3Options{
		AccessKeyID:     unquote(u.user),
		SecretAccessKey: unquote(u.password),
		Extra:           make(map[string]any),
	}

	parts := strings.Split(u.hostname, ".")
	n := len(parts)
	switch {
	case n >= 2 && parts[n-2]+"."+parts[n-1] == awsDomain:
		switch {
		case n == 4 && parts[0] == s3HostMarker:
			opts.Region = parts[1]
			bucket, prefix, err := splitBucketPath(u)
			if err != nil {
				return nil, err
			}
			opts.BucketName, opts.KeyPrefix = bucket, prefix
		case n >= 5 && parts[n-4] == s3HostMarker:
			opts.Region = parts[n-3]
			opts.BucketName = strings.Join(parts[:n-4], ".")
			opts.KeyPrefix = strings.Trim(u.path, "/")
		default:
			return nil, newInvalidURLError(u.raw, fmt.Sprintf("unrecognized %s host %q", awsDomain, u.hostname), nil)
		}
	default:
		if u.hostname == "" {
			return nil, newInvalidURLError(u.raw, "missing endpoint host", nil)
		}
		port, hasPort, err := u.port()
		if err != nil {
			return nil, newInvalidURLError(u.raw, "bad port", err)
		}
		host := u.hostname
		if hasPort {
			host = net.JoinHostPort(host, fmt.Sprint(port))
		} else if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		opts.EndpointURL = endpointScheme + host

		bucket, prefix, err := splitBucketPath(u)
		if err != nil {
			return nil, err
		}
		opts.BucketName, opts.KeyPrefix = bucket, prefix
	}

	for key, values := range u.query {
		value := literal.DecodeOrRaw(values[0])
		if target := opts.knownField(key); target != nil {
			if s, ok := value.(string); ok {
				*target = s
			} else {
				*target = values[0]
			}
			continue
		}
		opts.Extra[key] = value
	}

	return opts, nil
}

// splitBucketPath takes the bucket from the first path segment and the key
// prefix from the rest
func splitBucketPath(u *parsedURL) (bucket, prefix string, err error) {
	bucket, prefix, _ = strings.Cut(strings.Trim(u.path, "/"), "/")
	if bucket == "" {
		return "", "", newInvalidURLError(u.raw, "missing bucket name in path", nil)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func (o *S3Options) knownField(key string) *string {
	switch key {
	case "aws_region":
		return &o.Region
	case "aws_s3_bucket_name":
		return &o.BucketName
	case "aws_s3_key_prefix":
		return &o.KeyPrefix
	case "aws_s3_endpoint_url":
		return &o.EndpointURL
	case "aws_access_key_id":
		return &o.AccessKeyID
	case "aws_secret_access_key":
		return &o.SecretAccessKey
	}
	return nil
}

func (o *S3Options) fields() map[string]any {
	fields := make(map[string]any, len(o.Extra)+6)
	for key, value := range o.Extra {
		fields[key] = value
	}
	fields["aws_access_key_id"] = o.AccessKeyID
	fields["aws_secret_access_key"] = o.SecretAccessKey
	fields["aws_s3_bucket_name"] = o.BucketName
	fields["aws_s3_key_prefix"] = o.KeyPrefix
	if o.Region != "" {
		fields["aws_region"] = o.Region
	}
	if o.EndpointURL != "" {
		fields["aws_s3_endpoint_url"] = o.EndpointURL
	}
	return fields
}

// AWSConfig returns an SDK config with the record's region and static
// credentials. Nothing is read from the environment.
func (o *S3Options) AWSConfig() aws.Config {
	cfg := aws.Config{Region: o.Region}
	if o.AccessKeyID != "" {
		cfg.Credentials = credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, "")
	}
	return cfg
}

// LoadAWSConfig loads the default SDK config chain and overrides the region
// and credentials the record carries
func (o *S3Options) LoadAWSConfig(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if o.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.Region))
	}
	if o.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, ""),
		))
	}
	loadOpts = append(loadOpts, optFns...)

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// ClientOptions points an S3 client at a custom endpoint using path-style
// addressing. It is a no-op for AWS records.
func (o *S3Options) ClientOptions() func(*s3.Options) {
	return func(opts *s3.Options) {
		if o.EndpointURL != "" {
			opts.BaseEndpoint = aws.String(o.EndpointURL)
			opts.UsePathStyle = true
		}
	}
}

// NewS3Client builds an S3 client for the record. No request is sent.
func (o *S3Options) NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := o.LoadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, o.ClientOptions()), nil
}
