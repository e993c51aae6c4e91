package repoargs

type CreateBook struct {
	BookID     string
	StoreID    string
	Title      string
	Author     string
	Publisher  string
	BookIntro  string
	Content    string
	Tags       []string
	Price      int64
	StockLevel int64
}

// SearchBooks аргументы полнотекстового поиска. Пустой StoreID - поиск по
// всем магазинам. Page начинается с 1.
type SearchBooks struct {
	Keyword string
	StoreID string
	Page    uint
	Limit   uint
}
