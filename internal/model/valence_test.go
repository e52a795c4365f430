package model

import "testing"

func TestClassifyValence_Partition(t *testing.T) {
	tests := []struct {
		name string
		want ValenceClassification
		in   float64
	}{
		{name: "minimum", in: -1.0, want: VeryUnpleasant},
		{name: "just below -0.6", in: -0.601, want: VeryUnpleasant},
		{name: "-0.6 boundary closed on unpleasant side", in: -0.6, want: Unpleasant},
		{name: "middle of unpleasant", in: -0.4, want: Unpleasant},
		{name: "-0.2 boundary closed on neutral side", in: -0.2, want: NeutralValence},
		{name: "zero", in: 0, want: NeutralValence},
		{name: "0.2 boundary closed on neutral side", in: 0.2, want: NeutralValence},
		{name: "just above 0.2", in: 0.201, want: Pleasant},
		{name: "0.6 boundary closed on pleasant side", in: 0.6, want: Pleasant},
		{name: "just above 0.6", in: 0.601, want: VeryPleasant},
		{name: "maximum", in: 1.0, want: VeryPleasant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyValence(tt.in); got != tt.want {
				t.Errorf("ClassifyValence(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyValence_Exhaustive(t *testing.T) {
	// Every clamped valence maps to exactly one bucket.
	for v := -1.0; v <= 1.0; v += 0.001 {
		c := ClassifyValence(v)
		switch c {
		case VeryUnpleasant, Unpleasant, NeutralValence, Pleasant, VeryPleasant:
		default:
			t.Fatalf("ClassifyValence(%v) = %q, not a known bucket", v, c)
		}
	}
}

func TestValenceClassification_Prose(t *testing.T) {
	tests := []struct {
		in   ValenceClassification
		want string
	}{
		{in: VeryUnpleasant, want: "very unpleasant"},
		{in: Unpleasant, want: "unpleasant"},
		{in: NeutralValence, want: "neutral"},
		{in: Pleasant, want: "pleasant"},
		{in: VeryPleasant, want: "very pleasant"},
	}

	for _, tt := range tests {
		if got := tt.in.Prose(); got != tt.want {
			t.Errorf("%s.Prose() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
