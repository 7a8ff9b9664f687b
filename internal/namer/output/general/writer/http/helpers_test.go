package http

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/stretchr/testify/require"
)

func TestTemplateFuncs(t *testing.T) {
	type testCase struct {
		name     string
		template string
		expected string
	}

	testCases := []testCase{
		{
			name:     "JSON rows",
			template: `{{ json .Rows }}`,
			expected: `[{"number":80,"words":"quatre-vingts"},{"number":0,"words":"zéro"}]`,
		},
		{
			name:     "Rows count",
			template: `{{ len .Rows }}`,
			expected: `2`,
		},
		{
			name:     "Joined words",
			template: `{{ words .Rows ", " }}`,
			expected: `quatre-vingts, zéro`,
		},
		{
			name:     "Folded words",
			template: `{{ ascii (words .Rows " ") }}`,
			expected: `quatre-vingts zero`,
		},
	}

	payload := bodyPayload{
		Dialect: "standard",
		Rows: []*models.NamedNumber{
			{Number: 80, Words: "quatre-vingts"},
			{Number: 0, Words: "zéro"},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		tmpl, err := template.New("test").Funcs(templateFuncs()).Parse(tc.template)
		require.NoError(t, err)

		buf := new(bytes.Buffer)

		require.NoError(t, tmpl.Execute(buf, payload))
		require.Equal(t, tc.expected, buf.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
