package archive

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func stubS3(t *testing.T) {
	t.Helper()
	origLoad, origNew, origPut, origNow := loadDefaultAWSConfig, newS3ClientFromConfig, putObject, now
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
		now = origNow
	})
	now = func() time.Time { return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC) }
}

func TestNewS3Store_AppliesOptions(t *testing.T) {
	stubS3(t)

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{}, nil
	}

	var so s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&so)
		}
		return &s3.Client{}
	}

	st, err := New(context.Background(), Options{
		Bucket:    "chapter",
		Region:    "eu-central-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)
	require.IsType(t, &S3Store{}, st)

	require.Equal(t, "eu-central-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "minio", creds.AccessKeyID)

	require.NotNil(t, so.BaseEndpoint)
	require.Equal(t, "http://127.0.0.1:9000", *so.BaseEndpoint)
	require.True(t, so.UsePathStyle)
}

func TestNewS3Store_DefaultChainWithoutKeys(t *testing.T) {
	stubS3(t)

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{}, nil
	}
	var so s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&so)
		}
		return &s3.Client{}
	}

	_, err := NewS3Store(context.Background(), Options{Bucket: "b", Region: "us-east-1"})
	require.NoError(t, err)
	require.Nil(t, lo.Credentials)
	require.Nil(t, so.BaseEndpoint)
	require.False(t, so.UsePathStyle)
}

func TestNewS3Store_LoadError(t *testing.T) {
	stubS3(t)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewS3Store(context.Background(), Options{Bucket: "b"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load-fail")
}

func TestS3Store_Save(t *testing.T) {
	stubS3(t)

	var got *s3.PutObjectInput
	var body []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		got = in
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		body = b
		return nil
	}

	st := &S3Store{client: &s3.Client{}, bucket: "chapter"}
	loc, err := st.Save(context.Background(), "recruitment export.xlsx", "application/vnd.ms-excel", []byte("xlsx"))
	require.NoError(t, err)

	require.Equal(t, "chapter", aws.ToString(got.Bucket))
	require.Regexp(t, regexp.MustCompile(`^exports/2025/03/09/[0-9a-f-]{36}-recruitment export\.xlsx$`), aws.ToString(got.Key))
	require.Equal(t, "application/vnd.ms-excel", aws.ToString(got.ContentType))
	require.Equal(t, int64(4), aws.ToInt64(got.ContentLength))
	require.Equal(t, "xlsx", string(body))
	require.Equal(t, "s3://chapter/"+aws.ToString(got.Key), loc)
}

func TestS3Store_Save_Errors(t *testing.T) {
	stubS3(t)
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		return errors.New("access denied")
	}
	st := &S3Store{client: &s3.Client{}, bucket: "chapter"}

	_, err := st.Save(context.Background(), "a.pdf", "", []byte("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "access denied")

	_, err = st.Save(context.Background(), "", "", nil)
	require.ErrorIs(t, err, ErrEmptyName)
}
