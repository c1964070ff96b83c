package catalog

import (
	"strings"
	"testing"
)

func TestParseCSV_RoundTrip(t *testing.T) {
	in := strings.NewReader(
		"name,type,walk_in,beds,languages,services\n" +
			"Harbor Free Clinic,Clinic,yes,3,English|Spanish,medical|clinic\n")

	records, skipped, err := ParseCSV(in)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if !rec.WalkIn {
		t.Error("walk_in=yes should parse to true")
	}
	if rec.Beds != 3 {
		t.Errorf("Beds = %d, want 3", rec.Beds)
	}
	if len(rec.Languages) != 2 || rec.Languages[0] != "English" || rec.Languages[1] != "Spanish" {
		t.Errorf("Languages = %v, want [English Spanish]", rec.Languages)
	}
	if rec.Slug != "harbor-free-clinic" {
		t.Errorf("Slug = %q, want harbor-free-clinic", rec.Slug)
	}
}

func TestParseCSV_RowLevelFailuresAreBestEffort(t *testing.T) {
	in := strings.NewReader(
		"name,type,beds\n" +
			",Shelter,2\n" + // no name: skipped
			"Good Row,Clinic,not-a-number\n" + // bad number: neutralized to 0
			"Another Good Row,Shelter,5\n")

	records, skipped, err := ParseCSV(in)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Beds != 0 {
		t.Errorf("malformed beds should fall back to 0, got %d", records[0].Beds)
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %v, want exactly the nameless row", skipped)
	}
	if skipped[0].Line != 2 || skipped[0].Reason != "missing name" {
		t.Errorf("skipped[0] = %+v, want line 2 / missing name", skipped[0])
	}
}

func TestParseCSV_MissingColumnsAreEmpty(t *testing.T) {
	in := strings.NewReader("name\nBare Minimum\n")
	records, _, err := ParseCSV(in)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Type != "" || rec.WalkIn || rec.Beds != 0 || rec.Languages != nil {
		t.Errorf("missing columns should be zero values, got %+v", rec)
	}
}

func TestParseBool(t *testing.T) {
	trues := []string{"1", "true", "yes", "y", "TRUE", "Yes", "Y"}
	for _, s := range trues {
		if !parseBool(s) {
			t.Errorf("parseBool(%q) = false, want true", s)
		}
	}
	falses := []string{"", "0", "no", "false", "maybe"}
	for _, s := range falses {
		if parseBool(s) {
			t.Errorf("parseBool(%q) = true, want false", s)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"English", []string{"English"}},
		{"English|Spanish", []string{"English", "Spanish"}},
		{" English | Spanish ||", []string{"English", "Spanish"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
