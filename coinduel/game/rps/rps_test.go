package rps

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		a, b Choice
		want Result
	}{
		{"rock crushes scissors", Rock, Scissors, AWins},
		{"scissors lose to rock", Scissors, Rock, BWins},
		{"scissors cut paper", Scissors, Paper, AWins},
		{"paper loses to scissors", Paper, Scissors, BWins},
		{"paper covers rock", Paper, Rock, AWins},
		{"rock loses to paper", Rock, Paper, BWins},
		{"rock mirror", Rock, Rock, Draw},
		{"paper mirror", Paper, Paper, Draw},
		{"scissors mirror", Scissors, Scissors, Draw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.a, tt.b); got != tt.want {
				t.Errorf("Resolve(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestResolve_Symmetry(t *testing.T) {
	mirror := map[Result]Result{Draw: Draw, AWins: BWins, BWins: AWins}
	for _, a := range Choices {
		for _, b := range Choices {
			if got, want := Resolve(b, a), mirror[Resolve(a, b)]; got != want {
				t.Errorf("Resolve(%s, %s) = %v, want mirror %v", b, a, got, want)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Choice
		wantErr bool
	}{
		{"rock", Rock, false},
		{"Paper", Paper, false},
		{"  SCISSORS ", Scissors, false},
		{"lizard", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRandom_InDomain(t *testing.T) {
	for i := 0; i < 100; i++ {
		if _, err := Parse(string(Random())); err != nil {
			t.Fatalf("Random() produced a choice outside the domain")
		}
	}
}
