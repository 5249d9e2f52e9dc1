package sizechart

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"size-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeChart(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "size_chart.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestServiceReloadFromFile(t *testing.T) {
	path := writeChart(t, sampleChart)
	svc := NewService(FileSource{Path: path}, zap.NewNop())
	assert.Equal(t, 0, svc.Table().Len())

	rows, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	m, ok := svc.Resolve("Nike", GenderMale, size("9.5"))
	require.True(t, ok)
	assert.Equal(t, "43", m.EUR)
}

func TestServiceReloadFailureKeepsTable(t *testing.T) {
	path := writeChart(t, sampleChart)
	svc := NewService(FileSource{Path: path}, zap.NewNop())
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Name\nx\n"), 0o644))
	_, err = svc.Reload(context.Background())
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Equal(t, 2, svc.Table().Len())

	require.NoError(t, os.Remove(path))
	_, err = svc.Reload(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, svc.Table().Len())
}

func TestStaticService(t *testing.T) {
	svc := NewStaticService([]ReferenceRow{
		row("Nike", "US", "USW", "9", "10.5", "8", "42.5", "27"),
	}, zap.NewNop())

	rows, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestStorageSource(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "charts").Return(true, nil)
	client.On("GetObject", mock.Anything, "charts", "size_chart.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(sampleChart)), nil)

	source, err := NewSource(Config{Source: "storage", Object: "size_chart.csv"}, client, "charts")
	require.NoError(t, err)
	assert.Equal(t, "storage:charts/size_chart.csv", source.String())

	svc := NewService(source, zap.NewNop())
	rows, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	client.AssertExpectations(t)
}

func TestStorageSourceErrors(t *testing.T) {
	t.Run("missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "charts").Return(false, nil)

		_, err := StorageSource{Client: client, Bucket: "charts", Object: "x.csv"}.Open(context.Background())
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("get object fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "charts").Return(true, nil)
		client.On("GetObject", mock.Anything, "charts", "x.csv", minio.GetObjectOptions{}).
			Return(nil, errors.New("access denied"))

		_, err := StorageSource{Client: client, Bucket: "charts", Object: "x.csv"}.Open(context.Background())
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: "file", Path: "chart.csv"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "file:chart.csv", src.String())

	_, err = NewSource(Config{Source: "storage"}, nil, "charts")
	assert.Error(t, err)

	_, err = NewSource(Config{Source: "ftp"}, nil, "")
	assert.Error(t, err)
}
