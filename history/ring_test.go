// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"fmt"
	"testing"
)

func TestRing_PrevNext(t *testing.T) {
	r := NewRing(10)
	r.Add("one")
	r.Add("two")
	r.Add("three")

	steps := []struct {
		prev bool
		want string
		ok   bool
	}{
		{true, "three", true},
		{true, "two", true},
		{true, "one", true},
		{true, "one", true}, // clamps at the oldest
		{false, "two", true},
		{false, "three", true},
		{false, "", true}, // past the newest
		{false, "", false},
		{true, "three", true},
	}
	for i, s := range steps {
		var got string
		var ok bool
		if s.prev {
			got, ok = r.Prev()
		} else {
			got, ok = r.Next()
		}
		if got != s.want || ok != s.ok {
			t.Fatalf("step %d: got %q/%v, want %q/%v", i, got, ok, s.want, s.ok)
		}
	}
}

func TestRing_AddSkipsBlankAndRepeats(t *testing.T) {
	r := NewRing(10)
	if !r.Add("ls") {
		t.Fatal("expected first add to change the ring")
	}
	if r.Add("ls") {
		t.Error("consecutive duplicate should be ignored")
	}
	if r.Add("   ") {
		t.Error("blank entry should be ignored")
	}
	r.Add("pwd")
	r.Add("ls")
	if got := r.Len(); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
}

func TestRing_NextWithoutNavigationMisses(t *testing.T) {
	r := NewRing(5)
	r.Add("a")
	if text, ok := r.Next(); ok || text != "" {
		t.Errorf("got %q/%v, want a miss", text, ok)
	}
	if text, ok := r.Prev(); !ok || text != "a" {
		t.Errorf("got %q/%v, want \"a\"", text, ok)
	}
}

func TestRing_EvictsOldest(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Add(fmt.Sprintf("e%d", i))
	}
	got := r.Entries()
	want := []string{"e2", "e3", "e4"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRing_AddResetsNavigation(t *testing.T) {
	r := NewRing(5)
	r.Add("a")
	r.Add("b")
	r.Prev()
	r.Prev()
	r.Add("c")
	if got, _ := r.Prev(); got != "c" {
		t.Errorf("expected navigation to restart at newest, got %q", got)
	}
}

func TestRing_EmptyAndClear(t *testing.T) {
	r := NewRing(0)
	if text, ok := r.Prev(); ok || text != "" {
		t.Errorf("empty ring Prev: got %q/%v, want a miss", text, ok)
	}
	if text, ok := r.Next(); ok || text != "" {
		t.Errorf("empty ring Next: got %q/%v, want a miss", text, ok)
	}
	r.Add("x")
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("expected empty ring after Clear, got %d", r.Len())
	}
}

func TestNewRing_ClampsSize(t *testing.T) {
	if r := NewRing(-1); r.maxSize != DefaultSize {
		t.Errorf("expected default size, got %d", r.maxSize)
	}
	if r := NewRing(MaxSize + 1); r.maxSize != MaxSize {
		t.Errorf("expected clamp to %d, got %d", MaxSize, r.maxSize)
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range Classes() {
		got, err := ParseClass(c.String())
		if err != nil || got != c {
			t.Errorf("ParseClass(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseClass("bogus"); err == nil {
		t.Error("expected error for unknown class")
	}
}
