package expense

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Helper function to create a temporary expenses file
func createTempStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

const canonical = `[
  {
    "id": 1,
    "date": "2025-08-03",
    "description": "coffee",
    "amount": 3.5
  },
  {
    "id": 2,
    "date": "2025-08-04",
    "description": "book",
    "amount": 12
  }
]
`

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"), FailOnCorrupt)
	c, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !c.IsEmpty() {
		t.Errorf("Load() = %v, want empty", c)
	}
}

func TestFileStore_Load(t *testing.T) {
	s := NewFileStore(createTempStore(t, canonical), ResetToEmpty)
	c, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []Expense{
		{ID: 1, Date: day, Description: "coffee", Amount: A(3.5)},
		{ID: 2, Date: day.Add(1), Description: "book", Amount: A(12)},
	}
	if diff := cmp.Diff(want, c.Expenses()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json"},
		{name: "truncated", content: `[{"id":1,"description":"coffee"`},
		{name: "object", content: `{"id":1,"description":"coffee","amount":3}`},
		{name: "scalar", content: `42`},
		{name: "null", content: `null`},
		{name: "list of numbers", content: `[1,2,3]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := createTempStore(t, tc.content)

			c, err := NewFileStore(path, ResetToEmpty).Load()
			if err != nil {
				t.Fatalf("ResetToEmpty: Load() error = %v", err)
			}
			if !c.IsEmpty() {
				t.Errorf("ResetToEmpty: Load() = %v, want empty", c)
			}

			_, err = NewFileStore(path, FailOnCorrupt).Load()
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("FailOnCorrupt: Load() error = %v, want %v", err, ErrCorruptStore)
			}
		})
	}
}

func TestFileStore_LoadEmptyFile(t *testing.T) {
	c, err := NewFileStore(createTempStore(t, "  \n"), FailOnCorrupt).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !c.IsEmpty() {
		t.Errorf("Load() = %v, want empty", c)
	}
}

func TestFileStore_LoadLegacyDateKey(t *testing.T) {
	content := `[{"id":1,"data":"2025-08-03","description":"coffee","amount":3.5}]`
	c, err := NewFileStore(createTempStore(t, content), FailOnCorrupt).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, ok := c.Find(1)
	if !ok {
		t.Fatalf("Find(1) not found in %v", c)
	}
	if got.Date != day {
		t.Errorf("Date = %v, want %v", got.Date, day)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := createTempStore(t, canonical)
	s := NewFileStore(path, FailOnCorrupt)

	c, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Save(c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if diff := cmp.Diff(canonical, string(got)); diff != "" {
		t.Errorf("save(load(x)) mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", DefaultFilename)
	s := NewFileStore(path, FailOnCorrupt)
	if err := s.Save(NewCollection()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if want := "[]\n"; string(got) != want {
		t.Errorf("Save() wrote %q, want %q", got, want)
	}
}

func TestFileStore_SaveOverwritesCorrupt(t *testing.T) {
	path := createTempStore(t, "garbage")
	s := NewFileStore(path, ResetToEmpty)
	c, _ := s.Load()
	c.Add("coffee", A(3.5), day)
	if err := s.Save(c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	reloaded, err := NewFileStore(path, FailOnCorrupt).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reloaded.Len())
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(Expense{ID: 1, Date: day, Description: "coffee", Amount: A(3.5)})

	c, _ := s.Load()
	c.Add("book", A(12), day)
	// Changes are not visible until saved.
	if again, _ := s.Load(); again.Len() != 1 {
		t.Errorf("Load() before Save() has %d expenses, want 1", again.Len())
	}
	if err := s.Save(c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if again, _ := s.Load(); again.Len() != 2 {
		t.Errorf("Load() after Save() has %d expenses, want 2", again.Len())
	}
	if s.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", s.Saves())
	}

	var zero MemoryStore
	if c, err := zero.Load(); err != nil || !c.IsEmpty() {
		t.Errorf("zero MemoryStore Load() = %v, %v; want empty", c, err)
	}
}

func TestParseCorruptPolicy(t *testing.T) {
	for _, p := range []CorruptPolicy{ResetToEmpty, FailOnCorrupt} {
		got, err := ParseCorruptPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseCorruptPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseCorruptPolicy("ignore"); err == nil {
		t.Errorf("ParseCorruptPolicy(\"ignore\") expected an error")
	}
}
