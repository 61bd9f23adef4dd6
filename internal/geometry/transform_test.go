package geometry

import "testing"

func TestRect_Scale(t *testing.T) {
	// Scaling around the center keeps the center fixed.
	r := NewRect(50, 50, 100, 60)
	got := r.Scale(1.5)
	want := NewRect(25, 35, 150, 90)

	if got != want {
		t.Errorf("Scale(1.5) = %+v, want %+v", got, want)
	}
	if got.Center() != r.Center() {
		t.Errorf("Scale moved center: %+v -> %+v", r.Center(), got.Center())
	}
}

func TestRect_ScaleAround(t *testing.T) {
	type tc struct {
		rect   Rect
		sx, sy float64
		origin Point
		want   Rect
	}

	tests := map[string]tc{
		"around origin": {
			rect: NewRect(50, 50, 100, 60),
			sx:   2.0, sy: 0.5,
			origin: Point{},
			want:   NewRect(100, 25, 200, 30),
		},
		"around own corner": {
			rect: NewRect(10, 10, 40, 40),
			sx:   2.0, sy: 2.0,
			origin: Point{X: 10, Y: 10},
			want:   NewRect(10, 10, 80, 80),
		},
		"shrink around center": {
			rect: NewRect(0, 0, 100, 100),
			sx:   0.5, sy: 0.5,
			origin: Point{X: 50, Y: 50},
			want:   NewRect(25, 25, 50, 50),
		},
		"identity": {
			rect: NewRect(7, 11, 13, 17),
			sx:   1.0, sy: 1.0,
			origin: Point{X: 3, Y: 4},
			want:   NewRect(7, 11, 13, 17),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.ScaleAround(tt.sx, tt.sy, tt.origin)
			if got != tt.want {
				t.Errorf("ScaleAround(%v, %v, %+v) = %+v, want %+v",
					tt.sx, tt.sy, tt.origin, got, tt.want)
			}
		})
	}
}

func TestRect_Rotate90(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	got := r.Rotate90()
	want := NewRect(10, 20, 50, 100)

	if got != want {
		t.Errorf("Rotate90() = %+v, want %+v", got, want)
	}
	if got.Rotate90() != r {
		t.Errorf("double rotation is not the identity: %+v", got.Rotate90())
	}
}

func TestRect_FitInside(t *testing.T) {
	type tc struct {
		rect       Rect
		container  Rect
		keepAspect bool
		want       Rect
	}

	tests := map[string]tc{
		"stretch fills container": {
			rect:       NewRect(50, 50, 100, 60),
			container:  NewRect(0, 0, 400, 300),
			keepAspect: false,
			want:       NewRect(0, 0, 400, 300),
		},
		"keep aspect scales to width": {
			// 100x60 in 400x300: width is the limiting axis (4.0 < 5.0),
			// so the result is 400x240 centered vertically.
			rect:       NewRect(50, 50, 100, 60),
			container:  NewRect(0, 0, 400, 300),
			keepAspect: true,
			want:       NewRect(0, 30, 400, 240),
		},
		"keep aspect scales to height": {
			rect:       NewRect(0, 0, 50, 100),
			container:  NewRect(0, 0, 400, 300),
			keepAspect: true,
			want:       NewRect(125, 0, 150, 300),
		},
		"keep aspect shrinks": {
			rect:       NewRect(0, 0, 200, 200),
			container:  NewRect(0, 0, 100, 50),
			keepAspect: true,
			want:       NewRect(25, 0, 50, 50),
		},
		"empty rect": {
			rect:       Rect{},
			container:  NewRect(0, 0, 100, 100),
			keepAspect: true,
			want:       Rect{},
		},
		"empty container": {
			rect:       NewRect(0, 0, 10, 10),
			container:  Rect{},
			keepAspect: false,
			want:       Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.FitInside(tt.container, tt.keepAspect)
			if got != tt.want {
				t.Errorf("FitInside(keepAspect=%v) = %+v, want %+v", tt.keepAspect, got, tt.want)
			}
		})
	}
}
