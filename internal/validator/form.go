package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// 空欄（空白のみ含む）
	ErrBlank = errors.New("blank field")

	// 長すぎる
	ErrTooLong = errors.New("field too long")
)

// 列の長さ（varcharに合わせる）
const (
	MaxNameLen     = 255
	MaxDateLen     = 64
	MaxLocationLen = 255

	// bcryptが扱える上限
	MaxPasswordBytes = 72
)

// 1項目。Valueはtrim前でもよい
type Field struct {
	Value  string
	MaxLen int // 0なら上限なし
}

// 全項目を順に確認して最初のエラーを返す
func Check(fields ...Field) error {
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			return ErrBlank
		}
		if f.MaxLen > 0 && utf8.RuneCountInString(v) > f.MaxLen {
			return ErrTooLong
		}
	}
	return nil
}
