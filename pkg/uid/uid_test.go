package uid

import (
	"context"
	stderrors "errors"
	"math"
	"strings"
	"sync"
	"testing"
	"unicode"
)

func TestGenerator_Sequential(t *testing.T) {
	gen := New()

	if got := gen.NewID(""); got != "id-1" {
		t.Errorf("first NewID() = %q, want id-1", got)
	}
	if got := gen.NewID(""); got != "id-2" {
		t.Errorf("second NewID() = %q, want id-2", got)
	}
	if got := gen.Current(); got != 2 {
		t.Errorf("Current() = %d, want 2", got)
	}
}

func TestGenerator_ZeroValue(t *testing.T) {
	var gen Generator
	if got := gen.Next(); got != "id-1" {
		t.Errorf("zero value Next() = %q, want id-1", got)
	}
	if gen.Name() != "default" {
		t.Errorf("Name() = %q, want default", gen.Name())
	}
}

func TestGenerator_Prefix(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		callWith  string
		wantStart string
	}{
		{name: "default prefix", callWith: "", wantStart: "id-"},
		{name: "explicit call prefix", callWith: "x-", wantStart: "x-"},
		{name: "generator prefix", opts: []Option{WithPrefix("field-")}, callWith: "", wantStart: "field-"},
		{name: "call overrides generator", opts: []Option{WithPrefix("field-")}, callWith: "x-", wantStart: "x-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(tt.opts...)
			for i := 0; i < 20; i++ {
				id := gen.NewID(tt.callWith)
				if !strings.HasPrefix(id, tt.wantStart) {
					t.Fatalf("NewID(%q) = %q, want prefix %q", tt.callWith, id, tt.wantStart)
				}
				if unicode.IsDigit(rune(id[0])) {
					t.Fatalf("NewID(%q) = %q starts with a digit", tt.callWith, id)
				}
			}
		})
	}
}

func TestGenerator_Distinct(t *testing.T) {
	gen := New()
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = true
	}
}

func TestGenerator_MixedPrefixesShareCounter(t *testing.T) {
	gen := New()
	a := gen.NewID("a-")
	b := gen.NewID("b-")
	c := gen.Next()
	if a != "a-1" || b != "b-2" || c != "id-3" {
		t.Errorf("got %q %q %q, want a-1 b-2 id-3", a, b, c)
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	gen := New()
	const workers, per = 8, 500

	var mu sync.Mutex
	seen := make(map[string]bool, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, per)
			for i := 0; i < per; i++ {
				local = append(local, gen.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*per {
		t.Errorf("distinct ids = %d, want %d", len(seen), workers*per)
	}
	if gen.Current() != workers*per {
		t.Errorf("Current() = %d, want %d", gen.Current(), workers*per)
	}
}

func TestGenerator_Exhausted(t *testing.T) {
	gen := New(WithStart(math.MaxUint64 - 1))

	if got := gen.Next(); got != "id-18446744073709551615" {
		t.Fatalf("last id = %q", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on exhausted generator")
		}
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, ErrExhausted) {
			t.Fatalf("panic value = %v, want ErrExhausted", r)
		}
		if gen.Current() != math.MaxUint64 {
			t.Errorf("counter moved after exhaustion: %d", gen.Current())
		}
	}()
	gen.Next()
}

func TestGenerator_Observer(t *testing.T) {
	var got []string
	gen := New(WithName("server"), WithObserver(ObserverFunc(func(name, id string) {
		got = append(got, name+":"+id)
	})))

	gen.Next()
	gen.NewID("x-")

	want := []string{"server:id-1", "server:x-2"}
	if len(got) != len(want) {
		t.Fatalf("observer calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultGenerator(t *testing.T) {
	prev := SetDefault(New())
	defer SetDefault(prev)

	if got := NewID(""); got != "id-1" {
		t.Errorf("NewID(\"\") = %q, want id-1", got)
	}
	if got := NewID("x-"); got != "x-2" {
		t.Errorf("NewID(\"x-\") = %q, want x-2", got)
	}

	SetDefault(nil)
	if Default() == nil {
		t.Fatal("SetDefault(nil) should install a fresh generator")
	}
	if Default().Name() != "process" {
		t.Errorf("fresh default Name() = %q, want process", Default().Name())
	}
}

func TestContext(t *testing.T) {
	gen := New(WithName("request"))
	ctx := WithGenerator(context.Background(), gen)

	if FromContext(ctx) != gen {
		t.Error("FromContext should return the carried generator")
	}
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without generator should return Default()")
	}
}

func TestIndependentGeneratorsDiverge(t *testing.T) {
	server := New(WithName("server"))
	client := New(WithName("client"))

	// Server renders an extra element first; client does not.
	server.Next()
	serverID := server.Next()
	clientID := client.Next()

	if serverID == clientID {
		t.Fatalf("expected divergent ids, both %q", serverID)
	}
}
