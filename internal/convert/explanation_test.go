package convert

import "testing"

func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestPartExplanation(t *testing.T) {
	multi := "<div><div>one</div><div>two</div><div>three</div></div>"

	tests := []struct {
		name      string
		answer    any
		numParts  int
		partIndex int
		want      any
	}{
		{"single part whole answer normalized", "<p>a  b\n c</p>", 1, 1, "<p>a b c</p>"},
		{"single part empty answer", "   ", 1, 1, nil},
		{"single part missing answer", nil, 1, 1, nil},
		{"multi part first child", multi, 3, 1, "<div>one</div>"},
		{"multi part last child", multi, 3, 3, "<div>three</div>"},
		{"multi part index out of range", multi, 4, 4, nil},
		{"multi part no wrapper div", "<p>one</p><p>two</p>", 2, 1, nil},
		{"multi part wrapper is not a div", "<section><div>one</div></section>", 2, 1, nil},
		{"non-string answer", 12.0, 2, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partExplanation(tt.answer, tt.numParts, tt.partIndex)
			if strOrNil(got) != tt.want {
				t.Errorf("partExplanation() = %v, want %v", strOrNil(got), tt.want)
			}
		})
	}
}
