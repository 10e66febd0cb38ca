package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"festa/internal/config"
	"festa/internal/domain/model"
	"festa/internal/infra/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_Reset(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "banco.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("DB_MAX_OPEN_CONNS", "1")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "database schema created")

	// データを入れてから --reset
	cfg := config.Config{DBDriver: config.DriverSQLite, DBPath: dbPath, DBMaxOpenConns: 1}
	gdb, err := db.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&model.User{Name: "alice", PasswordHash: "x"}).Error)
	require.NoError(t, db.Close(gdb))

	cmd = newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--reset"})
	require.NoError(t, cmd.Execute())

	gdb, err = db.Connect(cfg)
	require.NoError(t, err)
	defer func() { _ = db.Close(gdb) }()
	var count int64
	require.NoError(t, gdb.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
