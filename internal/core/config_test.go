package core

import "testing"

func TestRuntimeConfigWithSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"terminal size", 120, 40, 120, 40},
		{"zero keeps default", 0, 0, 80, 24},
		{"negative keeps default", -1, 30, 80, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig().WithSize(tt.w, tt.h)
			if cfg.ScreenW != tt.wantW || cfg.ScreenH != tt.wantH {
				t.Errorf("WithSize(%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, cfg.ScreenW, cfg.ScreenH, tt.wantW, tt.wantH)
			}
			if cfg.TickRate != 60 {
				t.Errorf("TickRate = %d, want 60", cfg.TickRate)
			}
		})
	}
}
