package sortutil

import (
	"reflect"
	"testing"
)

func TestKeysSorted(t *testing.T) {
	m := map[string]struct{}{"zeta": {}, "$init": {}, "_x": {}, "Alpha": {}}
	got := Keys(m)
	want := []string{"$init", "Alpha", "_x", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	if got := Keys(map[string]int{}); len(got) != 0 {
		t.Fatalf("Keys(empty) = %v", got)
	}
}
