package search

import (
	"testing"

	"github.com/matst80/slask-photos/pkg/types"
)

func TestNormalize(t *testing.T) {
	if got := Normalize("Göteborg CAFÉ"); got != "goteborg cafe" {
		t.Errorf("Expected 'goteborg cafe' but got %q", got)
	}
}

func TestMatchesQuery(t *testing.T) {
	p := types.Photo{
		Filename:   "IMG_4211.RAF",
		FolderPath: "2024/Göteborg",
		Caption:    "Harbor cranes at dusk",
		OCRText:    "GÖTEBORGS HAMN",
		AltText:    "industrial harbor",
	}

	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"harbor", true},
		{"CRANES", true},
		{"goteborg", true},
		{"img_4211", true},
		{"hamn", true},
		{"lighthouse", false},
	}
	for _, c := range cases {
		if got := MatchesQuery(&p, c.query); got != c.want {
			t.Errorf("Expected %v for %q but got %v", c.want, c.query, got)
		}
	}
}
