package pgrepo

import "strconv"

// placeholder возвращает позиционный плейсхолдер $n для динамически
// собираемых запросов.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
