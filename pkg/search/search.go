// Package search liste ekranlarındaki serbest metin filtreleri için SQL parçaları üretir.
package search

import "strings"

// SQLFilter column için büyük/küçük harf duyarsız bir "içerir" filtresi döndürür.
// LOWER + LIKE ... ESCAPE hem PostgreSQL hem SQLite'ta çalışır.
func SQLFilter(column, term string) (string, []any) {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`, []any{"%" + Normalize(term) + "%"}
}

// Normalize arama terimini kırpar, küçük harfe çevirir ve LIKE joker karakterlerini kaçırır.
func Normalize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(term)
}
