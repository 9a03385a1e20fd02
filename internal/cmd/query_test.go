package cmd

import (
	"strings"
	"testing"

	"github.com/libman-dev/libman/internal/testutil"
)

func queryFixture(t *testing.T) *testutil.Tree {
	t.Helper()
	tree := testutil.NewTree(t)
	tree.WriteLibrary("libs/z.lml", "z",
		"Path: lib/libz.a",
		"Include: include",
		"Define: ZLIB_STATIC",
		"Uses: Threads/Threads",
		"Links: Sys/DL",
		"X-Custom: hello",
	)
	tree.WritePackage("zlib.lmp", "zlib", "Z",
		"Requires: threads",
		"Library: libs/z.lml",
		"X-Custom: pkg-value",
	)
	tree.WriteIndex("INDEX.lmi", "zlib; zlib.lmp")
	return tree
}

func TestQueryIndex_HasPackage(t *testing.T) {
	tree := queryFixture(t)
	var out strings.Builder

	code, err := queryIndex(&out, tree.Path("INDEX.lmi"), "has-package", "zlib")
	if err != nil || code != 0 {
		t.Errorf("has-package(zlib) = %d, %v, want 0, nil", code, err)
	}

	code, err = queryIndex(&out, tree.Path("INDEX.lmi"), "has-package", "nope")
	if err != nil || code != 1 {
		t.Errorf("has-package(nope) = %d, %v, want 1, nil", code, err)
	}
	if out.Len() != 0 {
		t.Errorf("has-package should print nothing, got %q", out.String())
	}
}

func TestQueryIndex_PackagePath(t *testing.T) {
	tree := queryFixture(t)
	var out strings.Builder

	code, err := queryIndex(&out, tree.Path("INDEX.lmi"), "package-path", "zlib")
	if err != nil || code != 0 {
		t.Fatalf("package-path = %d, %v", code, err)
	}
	if got := strings.TrimSpace(out.String()); got != tree.Path("zlib.lmp") {
		t.Errorf("package-path printed %q, want %q", got, tree.Path("zlib.lmp"))
	}

	code, err = queryIndex(&out, tree.Path("INDEX.lmi"), "package-path", "nope")
	if err != nil || code != 2 {
		t.Errorf("package-path(nope) = %d, %v, want 2, nil", code, err)
	}
}

func TestQueryIndex_Errors(t *testing.T) {
	tree := queryFixture(t)
	var out strings.Builder

	if _, err := queryIndex(&out, tree.Path("INDEX.lmi"), "bogus", "zlib"); err == nil {
		t.Error("expected error for unknown query type")
	}
	if _, err := queryIndex(&out, tree.Path("missing.lmi"), "has-package", "zlib"); err == nil {
		t.Error("expected error for missing index")
	}
}

func TestQueryPackage(t *testing.T) {
	tree := queryFixture(t)
	pkgPath := tree.Path("zlib.lmp")

	tests := []struct {
		query string
		key   string
		want  []string
	}{
		{query: "name", want: []string{"zlib"}},
		{query: "namespace", want: []string{"Z"}},
		{query: "requires", want: []string{"threads"}},
		{query: "libraries", want: []string{tree.Path("libs/z.lml")}},
		{query: "key", key: "X-Custom", want: []string{"pkg-value"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var out strings.Builder
			if err := queryPackage(&out, pkgPath, tt.query, tt.key); err != nil {
				t.Fatalf("queryPackage error: %v", err)
			}
			got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}

	var out strings.Builder
	if err := queryPackage(&out, pkgPath, "key", ""); err == nil {
		t.Error("query=key without --key should fail")
	}
	if err := queryPackage(&out, pkgPath, "bogus", ""); err == nil {
		t.Error("unknown query type should fail")
	}
}

func TestQueryLibrary(t *testing.T) {
	tree := queryFixture(t)
	libPath := tree.Path("libs/z.lml")

	tests := []struct {
		query string
		key   string
		want  string
	}{
		{query: "name", want: "z"},
		{query: "path", want: tree.Path("libs/lib/libz.a")},
		{query: "includes", want: tree.Path("libs/include")},
		{query: "defines", want: "ZLIB_STATIC"},
		{query: "uses", want: "Threads/Threads"},
		{query: "links", want: "Sys/DL"},
		{query: "key", key: "X-Custom", want: "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var out strings.Builder
			if err := queryLibrary(&out, libPath, tt.query, tt.key); err != nil {
				t.Fatalf("queryLibrary error: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
