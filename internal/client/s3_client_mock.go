package client

import (
	"context"
	"io"
	"sync"
	"time"
)

// MockS3Client implements S3ClientInterface in memory for tests and local runs without storage
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	UploadFileFunc func(ctx context.Context, key string, file io.Reader, contentType string) error
	DeleteFileFunc func(ctx context.Context, key string) error

	mu      sync.Mutex
	objects map[string][]byte
}

// NewMockS3Client creates a new mock S3 client
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket:  "test-bucket",
		Region:  "ap-northeast-2",
		objects: make(map[string][]byte),
	}
}

func (m *MockS3Client) GenerateFileKey(fileName string, now time.Time) string {
	return thumbnailKey(fileName, now)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = data
	return nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	return fileURL(m.Endpoint, m.Bucket, m.Region, key)
}

// Object returns a stored object and whether it exists
func (m *MockS3Client) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

var _ S3ClientInterface = (*MockS3Client)(nil)
