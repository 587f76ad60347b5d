package imgmeta

import (
	"strings"
	"testing"
)

func TestCleanSVG(t *testing.T) {
	src := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">`,
		`<metadata>`,
		`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">`,
		`<dc:creator>someone</dc:creator>`,
		`</rdf:RDF>`,
		`</metadata>`,
		`<rect width="10" height="10" fill="blue"/>`,
		`</svg>`,
	}, "\n")

	cleaned, err := CleanSVG([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	got := string(cleaned)

	for _, banned := range []string{"<metadata", "rdf:", "dc:creator", "someone"} {
		if strings.Contains(got, banned) {
			t.Errorf("metadata %q survived cleaning", banned)
		}
	}
	for _, kept := range []string{"<svg", "<rect", "</svg>"} {
		if !strings.Contains(got, kept) {
			t.Errorf("document content %q was removed", kept)
		}
	}
}

func TestCleanSVGInvalid(t *testing.T) {
	if _, err := CleanSVG([]byte("not an svg")); err == nil {
		t.Error("expected error")
	}
}
