// Package test contains helpers shared by the package tests.
package test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Diff fails t with a -want +got diff if vExpect and vCurrent differ.
func Diff(t *testing.T, title string, vExpect, vCurrent interface{}) {
	t.Helper()
	if diff := cmp.Diff(vExpect, vCurrent); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", title, diff)
	}
}
