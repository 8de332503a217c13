package classify

import "testing"

func TestKnownNames(t *testing.T) {
	t.Parallel()

	k := NewKnownNames("custom-marker")

	for _, name := range []string{"HEAD", "config", "objects", "refs", "packed-refs", "custom-marker"} {
		if !k.Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"notgit.txt", "OBJECTS", ""} {
		if k.Contains(name) {
			t.Errorf("Contains(%q) = true, want false", name)
		}
	}
}

func TestExceptionsBasename(t *testing.T) {
	t.Parallel()

	e, err := NewExceptions(MatchBasename, nil)
	if err != nil {
		t.Fatalf("NewExceptions() error = %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/srv/git/manifests", true},
		{"/srv/git/repo", true},
		{"/srv/git/.repo", true},
		{"/srv/git/randomdir", false},
		// basename match, not substring or prefix
		{"/srv/git/manifests-old", false},
		{"/srv/manifests/sub", false},
		{"manifests", true},
	}

	for _, tt := range tests {
		if got := e.Excepted(tt.path); got != tt.want {
			t.Errorf("Excepted(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExceptionsPrefix(t *testing.T) {
	t.Parallel()

	e, err := NewExceptions(MatchPrefix, []string{"/git/android/.repo"})
	if err != nil {
		t.Fatalf("NewExceptions() error = %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/git/android/.repo", true},
		{"/git/android/.repo/manifests", true},
		{"/git/android", false},
		{"/other/.repo", false},
	}

	for _, tt := range tests {
		if got := e.Excepted(tt.path); got != tt.want {
			t.Errorf("Excepted(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExceptionsCustomEntries(t *testing.T) {
	t.Parallel()

	e, err := NewExceptions(MatchBasename, []string{"mirrors"})
	if err != nil {
		t.Fatalf("NewExceptions() error = %v", err)
	}
	if !e.Excepted("/srv/mirrors") {
		t.Error("custom entry should be excepted")
	}
	// Overriding the list drops the defaults
	if e.Excepted("/srv/manifests") {
		t.Error("default entry should not survive an override")
	}
}

func TestExceptionsUnknownStrategy(t *testing.T) {
	t.Parallel()

	if _, err := NewExceptions("substring", nil); err == nil {
		t.Error("NewExceptions() with unknown strategy should fail")
	}
}
