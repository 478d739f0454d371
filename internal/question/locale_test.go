package question

import "testing"

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		want    string
		wantErr bool
	}{
		{"root field", Document{"language": "en"}, "en", false},
		{"metadata fallback", Document{"metadata": map[string]any{"language": "ar"}}, "ar", false},
		{"root wins over metadata", Document{"language": "fr", "metadata": map[string]any{"language": "de"}}, "fr", false},
		{"normalized", Document{"language": "  EN "}, "en", false},
		{"empty root falls through", Document{"language": "", "metadata": map[string]any{"language": "pt"}}, "pt", false},
		{"unsupported", Document{"language": "ru"}, "", true},
		{"missing", Document{}, "", true},
		{"non-string", Document{"language": 7.0}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LanguageCode(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LanguageCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LanguageCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountryCodePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		root    any
		meta    any
		want    string
		wantErr bool
	}{
		{"eg in metadata wins over valid root", "zz", "eg", "eg", false},
		{"eg in root wins", "eg", "us", "eg", false},
		{"first valid in root-metadata order", "us", "uk", "us", false},
		{"invalid root falls to metadata", "xx", "sa", "sa", false},
		{"normalized", " UK ", nil, "uk", false},
		{"no valid candidate", "xx", "yy", "", true},
		{"both missing", nil, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{"metadata": map[string]any{}}
			if tt.root != nil {
				doc["country"] = tt.root
			}
			if tt.meta != nil {
				doc["metadata"] = map[string]any{"country": tt.meta}
			}
			got, err := CountryCode(doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CountryCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CountryCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountryCodeOrRawReturnsRawValue(t *testing.T) {
	doc := Document{"country": "xx"}
	if got := CountryCodeOrRaw(doc); got != "xx" {
		t.Errorf("CountryCodeOrRaw() = %q, want raw %q", got, "xx")
	}

	doc = Document{"metadata": map[string]any{"country": "yy"}}
	if got := CountryCodeOrRaw(doc); got != "yy" {
		t.Errorf("CountryCodeOrRaw() = %q, want raw %q", got, "yy")
	}

	doc = Document{"country": "zz"}
	if got := CountryCodeOrRaw(doc); got != "zz" {
		t.Errorf("CountryCodeOrRaw() = %q, want valid %q", got, "zz")
	}
}

func TestLocaleResolutionIsIdempotent(t *testing.T) {
	doc := Document{
		"language": "en",
		"country":  "us",
		"metadata": map[string]any{"country": "eg", "language": "ar"},
	}

	lang1, err1 := LanguageCode(doc)
	lang2, err2 := LanguageCode(doc)
	if err1 != nil || err2 != nil || lang1 != lang2 {
		t.Errorf("LanguageCode not idempotent: %q/%v vs %q/%v", lang1, err1, lang2, err2)
	}

	c1, _ := CountryCode(doc)
	c2, _ := CountryCode(doc)
	if c1 != c2 || c1 != "eg" {
		t.Errorf("CountryCode not idempotent or wrong precedence: %q vs %q", c1, c2)
	}
}
