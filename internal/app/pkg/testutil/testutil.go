package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fooddel/backend/internal/app/domains/entity/etuser"
	"fooddel/backend/internal/app/domains/repo/rpuser"
	"fooddel/backend/internal/app/infra/persistence/entity"
	"fooddel/backend/internal/app/infra/persistence/redis"
	"fooddel/backend/internal/app/pkg/idgen"
)

// OpenInMemoryDB 打开共享缓存的内存 SQLite 并执行表结构迁移
// 连接随用例结束自动关闭（t.Cleanup）
func OpenInMemoryDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&entity.Order{}, &entity.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateTestUser 落库一个测试用户并返回其领域对象
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *etuser.User {
	t.Helper()

	user, err := etuser.NewUser(idgen.GenerateID(), name, email, "$2a$10$test-hash")
	if err != nil {
		t.Fatalf("new test user: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rpuser.NewUserRepository(db).Create(ctx, user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// FakeOTPStore 内存 OTP 存储（测试用），记录最近一次写入的验证码
type FakeOTPStore struct {
	Codes map[string]string
}

// NewFakeOTPStore 创建内存 OTP 存储
func NewFakeOTPStore() *FakeOTPStore {
	return &FakeOTPStore{Codes: map[string]string{}}
}

func (s *FakeOTPStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	s.Codes[email] = code
	return nil
}

func (s *FakeOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, ok := s.Codes[email]
	if !ok {
		return "", redis.ErrOTPNotFound
	}
	return code, nil
}

func (s *FakeOTPStore) Delete(ctx context.Context, email string) error {
	delete(s.Codes, email)
	return nil
}
