package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"festa/internal/config"
	"festa/internal/domain/model"
	"festa/internal/infra/db"
	infraRepo "festa/internal/infra/repository"
	"festa/internal/infra/token"
	"festa/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// 本物のsqliteとTxManagerで同じ名前を同時に登録する
func TestRegister_ConcurrentSameName(t *testing.T) {
	for _, conns := range []int{1, 4} {
		t.Run(fmt.Sprintf("conns=%d", conns), func(t *testing.T) {
			gdb, err := db.Connect(config.Config{
				DBDriver:       config.DriverSQLite,
				DBPath:         filepath.Join(t.TempDir(), "banco.db"),
				DBMaxOpenConns: conns,
			})
			require.NoError(t, err)
			require.NoError(t, db.Migrate(gdb))
			t.Cleanup(func() { _ = db.Close(gdb) })

			uc := usecase.NewAuthUsecase(
				infraRepo.NewUserGormRepository(gdb),
				infraRepo.NewSessionGormRepository(gdb),
				infraRepo.NewTxManagerGorm(gdb),
				usecase.NewBcryptPasswordHasher(bcrypt.MinCost),
				token.NewJWTCodec("0123456789abcdef0123456789abcdef"),
				usecase.UUIDGenerator{},
				usecase.SystemClock{},
				time.Hour,
			)

			const n = 8
			errs := make([]error, n)
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, errs[i] = uc.Register(context.Background(), usecase.RegisterInput{Name: "carol", Password: "pw"})
				}(i)
			}
			wg.Wait()

			var ok, conflict int
			for _, err := range errs {
				switch {
				case err == nil:
					ok++
				case errors.Is(err, usecase.ErrConflict):
					conflict++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}
			assert.Equal(t, 1, ok)
			assert.Equal(t, n-1, conflict)

			// 負けた側のセッションは残らない
			var users, sessions int64
			require.NoError(t, gdb.Model(&model.User{}).Count(&users).Error)
			require.NoError(t, gdb.Model(&model.Session{}).Count(&sessions).Error)
			assert.Equal(t, int64(1), users)
			assert.Equal(t, int64(1), sessions)
		})
	}
}
