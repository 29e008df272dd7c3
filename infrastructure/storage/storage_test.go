package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/config"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, params)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_Put(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Storage
		wantURL string
	}{
		{
			name:    "url padrão do bucket",
			cfg:     config.Storage{Bucket: "advision", Region: "sa-east-1"},
			wantURL: "https://advision.s3.sa-east-1.amazonaws.com/reports/r.csv",
		},
		{
			name:    "url pública configurada",
			cfg:     config.Storage{Bucket: "advision", Region: "us-east-1", PublicURL: "https://cdn.advision.com/"},
			wantURL: "https://cdn.advision.com/reports/r.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeS3{}
			store := NewS3StorageWithClient(fake, tt.cfg)

			url, err := store.Put(context.Background(), "reports/r.csv", []byte("a,b\n"), "text/csv")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)

			require.Len(t, fake.puts, 1)
			assert.Equal(t, "advision", aws.ToString(fake.puts[0].Bucket))
			assert.Equal(t, "text/csv", aws.ToString(fake.puts[0].ContentType))
			assert.Equal(t, "a,b\n", string(fake.body))
		})
	}
}

func TestLocalStorage_PutAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root, "/media/reports/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "2024/05/report.json", []byte(`{}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "/media/reports/2024/05/report.json", url)

	content, err := os.ReadFile(filepath.Join(root, "2024", "05", "report.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))

	require.NoError(t, store.Delete(context.Background(), "2024/05/report.json"))
	_, err = os.Stat(filepath.Join(root, "2024", "05", "report.json"))
	assert.True(t, os.IsNotExist(err))

	_, err = store.Put(context.Background(), "../escape.txt", []byte("x"), "")
	assert.Error(t, err)
}

func TestNewKey(t *testing.T) {
	key, err := NewKey("images", "2024/05", "Minha Foto Final.PNG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "images/2024/05/"))
	assert.True(t, strings.HasSuffix(key, "-minha-foto-final.png"))

	other, err := NewKey("images", "2024/05", "Minha Foto Final.PNG")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
