package model

import "fmt"

// 商品（固定カタログ。DBには保存しない）
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
}

func (p Product) Price() string {
	return FormatCents(p.PriceCents)
}

// 1099 => "10.99"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
