package integrity

import (
	"context"
	"testing"

	"manifest-sync/core/database"
	"manifest-sync/core/storage"
	"manifest-sync/core/storage/mocks"
	"manifest-sync/feature/integrity/checks"
	"manifest-sync/feature/manifest"
	"manifest-sync/feature/manifest/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	testStorage  = storage.Config{Bucket: "test-bucket", Region: "us-east-1"}
	testManifest = manifest.Config{Prefix: "manifest"}
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, testManifest, nil, zap.NewNop())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"manifest"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "manifest/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"manifest"})
		assert.NoError(t, err)
	})
}

func TestService_Folders(t *testing.T) {
	svc := NewService(new(mocks.Client), testStorage, manifest.Config{}, nil, zap.NewNop())
	assert.Empty(t, svc.Folders())
}

func TestService_Artifacts(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, testManifest, nil, zap.NewNop())

	mockClient.On("StatObject", mock.Anything, "test-bucket", "manifest/version.txt", mock.Anything).Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

	missing, err := svc.CheckArtifacts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"manifest/version.txt"}, missing)
}

func TestService_History(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		svc := NewService(new(mocks.Client), testStorage, testManifest, nil, zap.NewNop())
		_, err := svc.CheckHistory()
		assert.ErrorIs(t, err, checks.ErrNoDatabase)
	})

	t.Run("Migrated", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, db.AutoMigrate(&models.ManifestRun{}))
		svc := NewService(new(mocks.Client), testStorage, testManifest, db, zap.NewNop())

		report, err := svc.CheckHistory()
		require.NoError(t, err)
		assert.True(t, report.Matched)
	})
}
