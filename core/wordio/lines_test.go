package wordio

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestStreamLinesTrimsTerminators(t *testing.T) {
	var got []string
	err := StreamLines(context.Background(), strings.NewReader("1+2=3\r\n9-5=4\n\n8/4=2"), func(s string) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1+2=3", "9-5=4", "", "8/4=2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStreamLinesEmitError(t *testing.T) {
	stop := errors.New("stop")
	err := StreamLines(context.Background(), strings.NewReader("a\nb\n"), func(string) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("want stop, got %v", err)
	}
}

func TestReadAllPlainGzipAndStdin(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(plain, []byte("1+2=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	gzPath := filepath.Join(dir, "b.txt.gz")
	fh, err := os.Create(gzPath)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte("9-5=4\n8/4=2\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadAll(context.Background(), []string{plain, gzPath, "-"}, strings.NewReader("7-6=1\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1+2=3", "9-5=4", "8/4=2", "7-6=1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(context.Background(), []string{filepath.Join(t.TempDir(), "nope.txt")}, nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
