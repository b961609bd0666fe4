package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FileStore persists the session as a JSON document at an afs URL (a local path,
// file://, mem:// ...). Every write rewrites the whole document; Clear removes it.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[string]string
}

// NewFileStore creates a Store persisted at location, loading any previously saved session.
func NewFileStore(location string) (*FileStore, error) {
	ret := &FileStore{
		URL:    url.Normalize(location, file.Scheme),
		fs:     afs.New(),
		values: map[string]string{},
	}
	if err := ret.load(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.save(context.Background())
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = map[string]string{}
	ctx := context.Background()
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to delete session %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save session %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load session %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, &f.values); err != nil {
		return fmt.Errorf("invalid session %v: %w", f.URL, err)
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	return nil
}
