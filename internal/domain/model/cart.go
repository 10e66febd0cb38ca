package model

// カート1行（商品カタログで解決済み）
type CartLine struct {
	ProductID  int64
	Name       string
	PriceCents int64
}

// 画面に出すカート
type Cart struct {
	Lines      []CartLine
	TotalCents int64
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Total() string {
	return FormatCents(c.TotalCents)
}

func (l CartLine) Price() string {
	return FormatCents(l.PriceCents)
}
