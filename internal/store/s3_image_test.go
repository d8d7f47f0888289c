// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	putBody     string
	deleteInput *s3.DeleteObjectInput
	err         error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = in
	if in.Body != nil {
		data, _ := io.ReadAll(in.Body)
		f.putBody = string(data)
	}
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = in
	return &s3.DeleteObjectOutput{}, f.err
}

// onlyReader hides the Seek method of the wrapped reader.
type onlyReader struct{ io.Reader }

func TestS3ImageStorage_Save(t *testing.T) {
	fake := &fakeS3{}
	storage := &s3ImageStorage{client: fake, bucket: "recipes", logger: logger.Nop()}

	err := storage.Save(context.Background(), "uploads/recipe/a.jpg", onlyReader{strings.NewReader("jpeg")}, "image/jpeg")
	require.NoError(t, err)

	require.NotNil(t, fake.putInput)
	assert.Equal(t, "recipes", aws.ToString(fake.putInput.Bucket))
	assert.Equal(t, "uploads/recipe/a.jpg", aws.ToString(fake.putInput.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.putInput.ContentType))
	assert.Equal(t, "jpeg", fake.putBody)
	_, seekable := fake.putInput.Body.(io.Seeker)
	assert.True(t, seekable)
}

func TestS3ImageStorage_Errors(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	storage := &s3ImageStorage{client: fake, bucket: "recipes", logger: logger.Nop()}

	err := storage.Save(context.Background(), "k", strings.NewReader("x"), "")
	assert.ErrorContains(t, err, "error uploading image")
	assert.Nil(t, fake.putInput.ContentType)

	err = storage.Delete(context.Background(), "k")
	assert.ErrorContains(t, err, "error deleting image")
	assert.Equal(t, "k", aws.ToString(fake.deleteInput.Key))
}

func TestNewS3ImageStorage_UsesConfiguredEndpoint(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var loadOpts awsconfig.LoadOptions
	loadDefaultAWSConfig = func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&loadOpts))
		}
		return aws.Config{Region: loadOpts.Region}, nil
	}

	var s3Opts s3.Options
	fake := &fakeS3{}
	newS3ClientFromConfig = func(_ aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&s3Opts)
		}
		return fake
	}

	storage, err := NewS3ImageStorage(context.Background(), config.S3{
		Bucket:    "recipes",
		Region:    "eu-central-1",
		Endpoint:  "http://minio:9000",
		AccessKey: "key",
		SecretKey: "secret",
	}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", loadOpts.Region)
	assert.NotNil(t, loadOpts.Credentials)
	assert.Equal(t, "http://minio:9000", aws.ToString(s3Opts.BaseEndpoint))
	assert.True(t, s3Opts.UsePathStyle)
	assert.Same(t, fake, storage.(*s3ImageStorage).client)
}

func TestNewS3ImageStorage_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3ImageStorage(context.Background(), config.S3{Bucket: "b", Region: "r"}, logger.Nop())
	assert.ErrorContains(t, err, "error loading AWS config")
}

func TestNewImageStorage_SelectsBackend(t *testing.T) {
	storage, err := NewImageStorage(context.Background(), config.Storage{
		Files: config.Files{BinaryDataDir: t.TempDir()},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fileImageStorage{}, storage)
}
