package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml): err = %v, want ErrBadFormat", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("%v: %v", f, err)
			continue
		}
		if g != f {
			t.Errorf("round trip %v gave %v", f, g)
		}
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"schema.json", JSONFormat},
		{"schema.yaml", YAMLFormat},
		{"schema.yml", YAMLFormat},
		{"schema", JSONFormat},
		{"-", JSONFormat},
	}
	for _, tt := range tests {
		if got := FromSuffix(tt.name); got != tt.want {
			t.Errorf("FromSuffix(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("suffixes wrong")
	}
}
