package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// downloadTTL 下载令牌有效期
const downloadTTL = 2 * time.Hour

type downloadEntry struct {
	filePath  string // 产物在磁盘上的路径
	fileName  string // 下载时展示的文件名
	expiresAt time.Time
}

// downloadStore 下载令牌 -> 转换产物的内存映射，带过期清理
type downloadStore struct {
	mu    sync.Mutex
	items map[string]downloadEntry
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]downloadEntry),
	}
}

func (s *downloadStore) put(filePath, fileName string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = uuid.New().String()
	s.items[token] = downloadEntry{
		filePath:  filePath,
		fileName:  fileName,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (downloadEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return downloadEntry{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return downloadEntry{}, false
	}
	return v, true
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
