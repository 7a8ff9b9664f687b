package http

import (
	"encoding/json"
	"reflect"
	"strings"
	"text/template"

	"github.com/frenchnum/frenchnum/internal/namer/locale"
	"github.com/frenchnum/frenchnum/internal/namer/models"
)

// templateFuncs returns functions available in format_template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"json":  toJSON,
		"len":   length,
		"ascii": locale.FoldASCII,
		"words": joinWords,
	}
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)

	return string(data), err
}

func length(v any) int {
	return reflect.ValueOf(v).Len()
}

// joinWords joins the words of rows with sep, e.g. {{ words .Rows "\n" }}.
func joinWords(rows []*models.NamedNumber, sep string) string {
	words := make([]string, len(rows))
	for i, row := range rows {
		words[i] = row.Words
	}

	return strings.Join(words, sep)
}
