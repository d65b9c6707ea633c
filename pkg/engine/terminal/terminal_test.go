package terminal

import "testing"

func TestGetSize_FallsBackWithoutTerminal(t *testing.T) {
	if IsTerminal() {
		t.Skip("stdout is a terminal")
	}
	w, h := GetSize()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize() = %d, %d, want %d, %d", w, h, DefaultWidth, DefaultHeight)
	}
	if GetWidth() != DefaultWidth {
		t.Errorf("GetWidth() = %d, want %d", GetWidth(), DefaultWidth)
	}
}
