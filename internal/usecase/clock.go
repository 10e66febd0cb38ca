package usecase

import (
	"time"

	"github.com/google/uuid"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// UUIDv4
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// 時刻はUTCで扱う（sqliteでの比較を文字列順に揃える）
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
