package ocr

import "testing"

func TestExtractOutputTexts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"two pages",
			`{"responses":[
				{"fullTextAnnotation":{"text":"page one"}},
				{"fullTextAnnotation":{"text":"page two"}}
			]}`,
			[]string{"page one", "page two"},
		},
		{
			"blank page skipped",
			`{"responses":[
				{"fullTextAnnotation":{"text":"  "}},
				{"fullTextAnnotation":{"text":"real text"}}
			]}`,
			[]string{"real text"},
		},
		{
			"missing annotation skipped",
			`{"responses":[{}, {"fullTextAnnotation":{"text":"kept"}}]}`,
			[]string{"kept"},
		},
		{"missing responses key", `{"inputConfig":{}}`, nil},
		{"not json", `{{{`, nil},
		{"wrong shape", `{"responses":"oops"}`, nil},
		{"empty responses", `{"responses":[]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractOutputTexts([]byte(tt.content))
			if len(got) != len(tt.want) {
				t.Fatalf("extractOutputTexts = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("extractOutputTexts[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
