package statuscache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore 文件持久化的状态覆盖存储
// 单客户端本地文件，跨会话保留，不与其他客户端共享
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// NewFileStore 创建文件存储，文件已存在时加载其内容
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: map[string]Entry{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read status cache failed: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.entries); err != nil {
			return nil, fmt.Errorf("decode status cache failed: %w", err)
		}
	}
	return s, nil
}

// Get 读取缓存条目
func (s *FileStore) Get(orderID string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[orderID]
	return entry, ok
}

// Put 写入缓存条目并持久化
func (s *FileStore) Put(orderID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[orderID] = entry
	return s.flush()
}

// Delete 删除缓存条目
func (s *FileStore) Delete(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[orderID]; !ok {
		return nil
	}
	delete(s.entries, orderID)
	return s.flush()
}

// flush 全量写盘（先写临时文件再改名，避免写一半的缓存文件）
// 调用方必须持有锁
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".statuscache-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// MemoryStore 纯内存实现（测试用）
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]Entry{}}
}

func (s *MemoryStore) Get(orderID string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[orderID]
	return entry, ok
}

func (s *MemoryStore) Put(orderID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[orderID] = entry
	return nil
}

func (s *MemoryStore) Delete(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, orderID)
	return nil
}
