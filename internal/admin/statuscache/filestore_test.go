package statuscache

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "status.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	seen := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	if err := store.Put("o1", Entry{Status: "Out for delivery", SeenAt: seen}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// 重新打开同一文件，条目应跨实例保留
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	entry, ok := reopened.Get("o1")
	if !ok {
		t.Fatal("entry lost after reopen")
	}
	if entry.Status != "Out for delivery" || !entry.SeenAt.Equal(seen) {
		t.Errorf("entry = %+v", entry)
	}
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, ok := store.Get("anything"); ok {
		t.Error("expected empty store")
	}
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Put("o1", Entry{Status: "Delivered", SeenAt: time.Now()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete("o1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.Get("o1"); ok {
		t.Error("entry still present after delete")
	}

	// 删除不存在的条目不报错
	if err := store.Delete("o1"); err != nil {
		t.Errorf("second delete: %v", err)
	}

	// 删除已落盘，重新打开后条目也不存在
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := reopened.Get("o1"); ok {
		t.Error("deleted entry resurfaced after reopen")
	}
}
