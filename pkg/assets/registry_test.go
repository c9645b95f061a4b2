package assets

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_DeduplicatesInOrder(t *testing.T) {
	reg := NewRegistry()
	reg.AddStylesheet("/css/sort_table.css")
	reg.AddStylesheet("/css/site.css")
	reg.AddStylesheet(" /css/sort_table.css ")
	reg.AddStylesheet("")
	reg.AddScript("/js/mootools.js")
	reg.AddScript("/js/mootools.js")

	if diff := cmp.Diff([]string{"/css/sort_table.css", "/css/site.css"}, reg.Stylesheets()); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/js/mootools.js"}, reg.Scripts()); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_SamePathDifferentKinds(t *testing.T) {
	reg := NewRegistry()
	reg.AddStylesheet("/bundle")
	reg.AddScript("/bundle")

	if len(reg.Stylesheets()) != 1 || len(reg.Scripts()) != 1 {
		t.Fatalf("expected path tracked per kind, got css=%v js=%v", reg.Stylesheets(), reg.Scripts())
	}
}

func TestRegistry_ZeroValueAndReset(t *testing.T) {
	var reg Registry
	reg.AddStylesheet("a.css")
	reg.Reset()
	if got := reg.Stylesheets(); len(got) != 0 {
		t.Fatalf("expected empty registry after reset, got %v", got)
	}
	reg.AddStylesheet("a.css")
	if got := reg.Stylesheets(); len(got) != 1 {
		t.Fatalf("expected re-registration after reset, got %v", got)
	}
}

func TestRegistry_ConcurrentAdds(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.AddStylesheet("/css/sort_table.css")
		}()
	}
	wg.Wait()

	if got := reg.Stylesheets(); len(got) != 1 {
		t.Fatalf("expected a single stylesheet, got %v", got)
	}
}

func TestTee_ForwardsToEveryTarget(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	tee := Tee(a, nil, b)
	tee.AddStylesheet("x.css")

	if len(a.Stylesheets()) != 1 || len(b.Stylesheets()) != 1 {
		t.Fatalf("expected both registries to record the stylesheet, got %v and %v", a.Stylesheets(), b.Stylesheets())
	}
}
