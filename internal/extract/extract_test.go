package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soupine/linkedin-backend-extraction/internal/shared/storage/object/local"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Summary</w:t></w:r></w:p><w:p><w:r><w:t>Engineer with 5 years of experience.</w:t></w:r></w:p></w:body></w:document>`

const relsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": relsXML,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t)

	text, err := ExtractTextFromBytes(context.Background(), data, mimeDOCX, "profile.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Summary") || !strings.Contains(text, "Engineer with 5 years of experience.") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t)

	if _, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "profile.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestExtractTextFromBytesRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestExtractTextFromBytesPlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("Summary\nline"), "text/plain; charset=utf-8", "profile.txt")
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	if text != "Summary\nline" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesOctetStreamUsesExtension(t *testing.T) {
	if _, err := ExtractTextFromBytes(context.Background(), []byte("plain body"), "application/octet-stream", "profile.txt"); err != nil {
		t.Fatalf("expected .txt fallback, got: %v", err)
	}
}

func TestExtractTextFromBytesInvalidUTF8Text(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0xff, 0xfe}, "text/plain", "x.txt")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected unreadable error for invalid UTF-8 text, got: %v", err)
	}
}

func TestExtractTextFromStore(t *testing.T) {
	store := local.New(t.TempDir())
	key, _, _, err := store.Save(context.Background(), "profile.txt", strings.NewReader("Summary\nSolid engineer."))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	text, err := ExtractText(context.Background(), store, key, "text/plain", "profile.txt")
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Summary\nSolid engineer." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesGarbagePDF(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("not a pdf"), mimePDF, "x.pdf")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected unreadable error for malformed pdf, got: %v", err)
	}
}
