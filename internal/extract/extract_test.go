package extract

import (
	"errors"
	"testing"
)

func TestPlainText(t *testing.T) {
	got, err := PlainText([]byte("1. hello\nA. x\n"))
	if err != nil || got != "1. hello\nA. x\n" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestPlainTextRejectsNonUTF8(t *testing.T) {
	_, err := PlainText([]byte{0xff, 0xfe, 0x00, 0x41})
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}

func TestXLSXRowsRejectsGarbage(t *testing.T) {
	_, err := XLSXRows([]byte("this is not a workbook"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}
