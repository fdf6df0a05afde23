package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeAsset creates {dir}/{kind dir}/{name}{ext} with content.
func writeAsset(t *testing.T, dir string, kind Kind, name, content string) {
	t.Helper()
	kindDir := filepath.Join(dir, kind.dir)
	if err := os.MkdirAll(kindDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(kindDir, name+kind.ext), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, Template, "party", "c,e,c\n")
	writeAsset(t, dir, WordList, "snacks", "Nachos\nWings\n")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		kind    Kind
		asset   string
		want    string
		wantErr error
	}{
		{"template", Template, "party", "c,e,c\n", nil},
		{"word list", WordList, "snacks", "Nachos\nWings\n", nil},
		{"missing template", Template, "absent", "", ErrTemplateNotFound},
		{"missing word list", WordList, "party", "", ErrWordListNotFound},
		{"invalid name", Template, "../party", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.Load(tt.kind, tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_Names(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, Template, "zeta", "c")
	writeAsset(t, dir, Template, "alpha", "c")
	// Files with other extensions are ignored.
	if err := os.WriteFile(filepath.Join(dir, "templates", "notes.md"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := loader.Names(Template)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, got); diff != "" {
		t.Errorf("Names(Template) mismatch (-want +got):\n%s", diff)
	}

	words, err := loader.Names(WordList)
	if err != nil || len(words) != 0 {
		t.Errorf("Names(WordList) = %v, %v; want empty, nil", words, err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.txt")
	if err := os.WriteFile(secret, []byte("top secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "words"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "words", "leak.txt")); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	_, err = loader.Load(WordList, "leak")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("Load() error = %v, want ErrPathTraversal", err)
	}
}
