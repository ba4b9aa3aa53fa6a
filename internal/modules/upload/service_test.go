package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 8-byte PNG signature, enough for http.DetectContentType.
var pngBytes = []byte("\x89PNG\r\n\x1a\nrestoffile")

type mockUploadRepo struct {
	mock.Mock
}

func (m *mockUploadRepo) Create(ctx context.Context, u *domain.Upload) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUploadRepo) GetByURL(ctx context.Context, fileURL string) (*domain.Upload, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *mockUploadRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fileHeader builds a real multipart.FileHeader the way gin would hand it to
// the service.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

// storedFiles walks baseDir and returns every regular file under it.
func storedFiles(t *testing.T, baseDir string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestStore_Success(t *testing.T) {
	repo := new(mockUploadRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.MimeType == "image/png" && u.OriginalName == "shot.png"
	})).Return(nil)

	baseDir := t.TempDir()
	service := NewService(repo, baseDir)

	u, err := service.Store(context.Background(), fileHeader(t, "shot.png", pngBytes))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.FileURL, StaticURLBase+"/"))
	assert.Equal(t, "image/png", u.MimeType)

	// the bytes made it to disk under the base dir
	saved, err := os.ReadFile(filepath.Join(baseDir, u.FilePath))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, saved)

	repo.AssertExpectations(t)
}

func TestStore_EmptyFile(t *testing.T) {
	service := NewService(new(mockUploadRepo), t.TempDir())

	_, err := service.Store(context.Background(), fileHeader(t, "empty.png", nil))

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestStore_TooLarge(t *testing.T) {
	repo := new(mockUploadRepo)
	service := NewService(repo, t.TempDir())

	// the size check runs before the file is ever opened
	oversized := &multipart.FileHeader{Filename: "big.png", Size: MaxFileSize + 1}

	_, err := service.Store(context.Background(), oversized)

	assert.ErrorIs(t, err, ErrFileTooLarge)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStore_RejectsNonImage(t *testing.T) {
	repo := new(mockUploadRepo)
	baseDir := t.TempDir()
	service := NewService(repo, baseDir)

	_, err := service.Store(context.Background(), fileHeader(t, "notes.txt", []byte("plain text, not an image")))

	assert.ErrorIs(t, err, ErrInvalidMimeType)
	assert.Empty(t, storedFiles(t, baseDir))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStore_RollsBackFileOnRepoError(t *testing.T) {
	repo := new(mockUploadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	baseDir := t.TempDir()
	service := NewService(repo, baseDir)

	_, err := service.Store(context.Background(), fileHeader(t, "shot.png", pngBytes))

	assert.Error(t, err)
	assert.Empty(t, storedFiles(t, baseDir), "file must be removed when the record cannot be saved")
}

func TestRemove_DeletesFileAndRecord(t *testing.T) {
	repo := new(mockUploadRepo)
	baseDir := t.TempDir()
	service := NewService(repo, baseDir)

	// stage a stored file the way Store lays them out
	relPath := filepath.Join("2026", "08", "30", "abc_shot.png")
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, filepath.Dir(relPath)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, relPath), pngBytes, 0644))

	fileURL := StaticURLBase + "/2026/08/30/abc_shot.png"
	repo.On("GetByURL", mock.Anything, fileURL).Return(&domain.Upload{
		ID:       "abc",
		FilePath: relPath,
		FileURL:  fileURL,
	}, nil)
	repo.On("Delete", mock.Anything, "abc").Return(nil)

	service.Remove(context.Background(), fileURL)

	_, err := os.Stat(filepath.Join(baseDir, relPath))
	assert.True(t, os.IsNotExist(err))
	repo.AssertExpectations(t)
}

func TestRemove_UnknownURLIsSwallowed(t *testing.T) {
	repo := new(mockUploadRepo)
	repo.On("GetByURL", mock.Anything, StaticURLBase+"/ghost.png").
		Return(nil, errors.New("record not found"))

	service := NewService(repo, t.TempDir())

	// must not panic or propagate anything
	service.Remove(context.Background(), StaticURLBase+"/ghost.png")

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemove_IgnoresForeignURLs(t *testing.T) {
	repo := new(mockUploadRepo)
	service := NewService(repo, t.TempDir())

	service.Remove(context.Background(), "https://cdn.example.com/image.png")
	service.Remove(context.Background(), "")

	repo.AssertNotCalled(t, "GetByURL", mock.Anything, mock.Anything)
}
