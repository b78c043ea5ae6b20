package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.February, 30)
	if want := New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: " 2024-12-31 ", want: New(2024, time.December, 31)},
		{in: "2025-07-01T10:20:30Z", want: New(2025, time.July, 1)},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2025, time.August, 3)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"2025-08-03"`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	var got Date
	if err := json.Unmarshal([]byte(`"2025-8-3"`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}

	if err := json.Unmarshal([]byte(`""`), &got); err != nil {
		t.Fatalf("Unmarshal(empty) error = %v", err)
	}
	if !got.IsZero() {
		t.Errorf("Unmarshal(empty) = %v, want zero date", got)
	}

	if err := json.Unmarshal([]byte(`12`), &got); err == nil {
		t.Errorf("Unmarshal(12) expected an error")
	}
}

func TestAdd(t *testing.T) {
	d := MustParse("2025-01-31")
	if got, want := d.Add(1), MustParse("2025-02-01"); !got.Equal(want) {
		t.Errorf("%v.Add(1) = %v, want %v", d, got, want)
	}
	if got, want := d.Add(-31), MustParse("2024-12-31"); !got.Equal(want) {
		t.Errorf("%v.Add(-31) = %v, want %v", d, got, want)
	}
}
