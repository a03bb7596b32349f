package domain

import "testing"

func TestDocument_TextPrefersContentFields(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
		want string
	}{
		{"text field", Document{"text": "conteúdo", "id": "1"}, "conteúdo"},
		{"content field", Document{"content": "corpo"}, "corpo"},
		{"portuguese field", Document{"texto": "fala do presidente"}, "fala do presidente"},
		{"json fallback", Document{"nome": "Cocamar"}, `{"nome":"Cocamar"}`},
		{"empty text falls through", Document{"text": "", "nome": "x"}, `{"nome":"x","text":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.doc.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}
