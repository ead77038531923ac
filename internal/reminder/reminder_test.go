package reminder

import "testing"

func TestDailySpec(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:30", "30 8 * * *", false},
		{"00:00", "0 0 * * *", false},
		{"23:59", "59 23 * * *", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"8.30", "", true},
		{"noonish", "", true},
	}
	for _, tc := range cases {
		got, err := dailySpec(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("dailySpec(%q) accepted bad input", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("dailySpec(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("dailySpec(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
