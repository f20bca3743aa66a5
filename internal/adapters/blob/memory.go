package blob

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"ratedesk/internal/domain/document"
)

// MemoryStore is an in-memory Store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	baseURL string
}

type memoryObject struct {
	data       []byte
	uploadedAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put stores the object in memory.
func (m *MemoryStore) Put(_ context.Context, pathname string, body io.Reader, _ string) (document.Object, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return document.Object{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	obj := memoryObject{data: data, uploadedAt: time.Now()}
	m.objects[pathname] = obj

	return document.Object{
		Pathname:   pathname,
		URL:        m.baseURL + "/" + pathname,
		Size:       int64(len(data)),
		UploadedAt: obj.uploadedAt,
	}, nil
}

// Exists reports whether an object with exactly this pathname exists.
func (m *MemoryStore) Exists(_ context.Context, pathname string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[pathname]
	return ok, nil
}

// ListPrefix returns every object whose pathname has the given prefix,
// sorted by pathname for deterministic tests.
func (m *MemoryStore) ListPrefix(_ context.Context, prefix string) ([]document.Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []document.Object
	for pathname, obj := range m.objects {
		if !strings.HasPrefix(pathname, prefix) {
			continue
		}
		results = append(results, document.Object{
			Pathname:   pathname,
			URL:        m.baseURL + "/" + pathname,
			Size:       int64(len(obj.data)),
			UploadedAt: obj.uploadedAt,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Pathname < results[j].Pathname })
	return results, nil
}

// Delete removes the object at pathname; absent keys are a no-op.
func (m *MemoryStore) Delete(_ context.Context, pathname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, pathname)
	return nil
}

// Copy duplicates the object at src to dst.
func (m *MemoryStore) Copy(_ context.Context, src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[src]
	if !ok {
		return &NotFoundError{Pathname: src}
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	m.objects[dst] = memoryObject{data: data, uploadedAt: time.Now()}
	return nil
}

// Len returns the number of stored objects. Intended for tests.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// NotFoundError reports a missing source object.
type NotFoundError struct {
	Pathname string
}

func (e *NotFoundError) Error() string {
	return "blob not found: " + e.Pathname
}
