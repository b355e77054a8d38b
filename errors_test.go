package dcmcsv

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestResolutionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ResolutionError
		contains []string
	}{
		{
			name:     "inline",
			err:      &ResolutionError{Input: "PatientNmae", Source: "--tag"},
			contains: []string{"--tag", `"PatientNmae"`, "cannot resolve"},
		},
		{
			name:     "tag file",
			err:      &ResolutionError{Input: "bogus", Source: "tags.txt:3"},
			contains: []string{"tags.txt:3", `"bogus"`},
		},
		{
			name:     "no source",
			err:      &ResolutionError{Input: "x"},
			contains: []string{`cannot resolve tag "x"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "report.pdf",
		Reason: "missing DICM prefix after preamble",
	}

	msg := err.Error()
	if !strings.Contains(msg, "report.pdf") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "missing DICM prefix") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !strings.Contains(msg, "unsupported format") {
		t.Errorf("error should contain 'unsupported format', got: %s", msg)
	}
}

func TestCorruptedFileError_Error(t *testing.T) {
	err := &CorruptedFileError{
		Path:   "broken.dcm",
		Offset: 256,
		Reason: "invalid VR",
	}

	msg := err.Error()
	if !strings.Contains(msg, "broken.dcm") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "offset 256") {
		t.Errorf("error should contain offset, got: %s", msg)
	}
	if !strings.Contains(msg, "corrupted file") {
		t.Errorf("error should contain 'corrupted file', got: %s", msg)
	}
}

func TestOpenError_Unwrap(t *testing.T) {
	inner := &CorruptedFileError{Path: "b.dcm", Reason: "truncated"}
	err := error(&OpenError{Path: "b.dcm", Err: inner})

	var ce *CorruptedFileError
	if !errors.As(err, &ce) {
		t.Fatalf("errors.As should find the decoder error in %v", err)
	}
	if !strings.Contains(err.Error(), "open b.dcm") {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestInvalidInputError_Unwrap(t *testing.T) {
	err := error(&InvalidInputError{Path: "missing", Reason: "cannot stat path", Err: fs.ErrNotExist})

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain: %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should contain path, got: %s", err)
	}
}
