package routepath

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"root", "/", "/", nil},
		{"empty", "", "/", nil},
		{"plain", "/signup", "/signup", nil},
		{"trailing slash", "/signup/", "/signup", nil},
		{"no leading slash", "signup", "/signup", nil},
		{"double slash", "/a//b", "/a/b", nil},
		{"dot", "/a/./b", "/a/b", nil},
		{"dotdot", "/a/x/../b", "/a/b", nil},
		{"query dropped", "/signup?step=2", "/signup", nil},
		{"fragment dropped", "/signup#email", "/signup", nil},
		{"valid escape", "/caf%C3%A9", "/caf%C3%A9", nil},
		{"escapes root", "/../secret", "", ErrEscapesRoot},
		{"backslash", `/a\b`, "", ErrBackslash},
		{"null byte", "/a%00b", "", ErrNullByte},
		{"bad escape", "/a%GG", "", ErrInvalidEscape},
		{"short escape", "/a%2", "", ErrInvalidEscape},
		{"protocol relative", "//evil.example/x", "", ErrAbsoluteURL},
		{"absolute", "https://evil.example/x", "", ErrAbsoluteURL},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Canonicalize(tc.input)
			if err != tc.wantErr {
				t.Fatalf("Canonicalize(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMustCanonicalize_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCanonicalize did not panic")
		}
	}()
	MustCanonicalize("/../x")
}
