package mdview

import (
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsNULByte(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := make([]byte, 128)
	for i := range data {
		if i%10 == 0 {
			data[i] = 0x01
		} else {
			data[i] = 'a'
		}
	}
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	data := []byte("# Heading\n\nBody text with\ttabs and\r\nnewlines.\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
