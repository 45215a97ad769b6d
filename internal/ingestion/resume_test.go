package ingestion

import (
	"strings"
	"testing"
)

func TestExtractText_PlainText(t *testing.T) {
	text := "Seasoned Go engineer with ten years of backend experience."
	got, err := ExtractText("resume.txt", []byte(text))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != text {
		t.Fatalf("got %q", got)
	}
}

func TestExtractText_RejectsBinaryDisguisedAsText(t *testing.T) {
	if _, err := ExtractText("resume.txt", []byte("%PDF-1.7 binary payload")); err == nil {
		t.Fatalf("expected error for binary content in a .txt upload")
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	if _, err := ExtractText("resume.docx", []byte("whatever")); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestIsBinaryData(t *testing.T) {
	if IsBinaryData("plain old text\nwith lines\n") {
		t.Fatalf("plain text flagged as binary")
	}
	if !IsBinaryData("%PDF-1.4") {
		t.Fatalf("PDF magic number not detected")
	}
	if !IsBinaryData("PK\x03\x04rest-of-zip") {
		t.Fatalf("ZIP magic number not detected")
	}
	if !IsBinaryData(strings.Repeat("\x00\x01", 600)) {
		t.Fatalf("high non-printable ratio not detected")
	}
	if IsBinaryData("") {
		t.Fatalf("empty string flagged as binary")
	}
}
