package seeker

import (
	"testing"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

func TestProfile_TextDefaultWeights(t *testing.T) {
	p := Profile{Bio: "gopher", Skills: domain.Skills{"Go"}}

	got := p.Text(DefaultWeights(), "resume")
	want := "gopher gopher gopher Go Go Go Go Go resume"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestProfile_TextWithoutCV(t *testing.T) {
	p := Profile{Bio: "a", Skills: domain.Skills{"b"}}

	got := p.Text(Weights{Bio: 1, Skills: 1, CV: 1}, "")
	if got != "a b" {
		t.Errorf("Text() = %q, want %q", got, "a b")
	}
}

func TestProfile_TextEmpty(t *testing.T) {
	p := Profile{}
	if got := p.Text(DefaultWeights(), ""); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestProfile_HasCV(t *testing.T) {
	if (&Profile{CVFilePath: "  "}).HasCV() {
		t.Error("blank path must not count as a CV")
	}
	if !(&Profile{CVFilePath: "u1/cv.pdf"}).HasCV() {
		t.Error("expected CV")
	}
}
