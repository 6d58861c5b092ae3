package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with footer",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 1},
			want:         38,
		},
		{
			name:         "with full help",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 8},
			want:         31,
		},
		{
			name:         "tiny window",
			windowHeight: 3,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 8},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{20, true},
		{47, true},
		{48, false},
		{120, false},
	}

	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		window, preferred, want int
	}{
		{80, 6, 6},
		{4, 6, 4},
		{0, 6, 0},
	}

	for _, tt := range tests {
		if got := BarWidth(tt.window, tt.preferred); got != tt.want {
			t.Errorf("BarWidth(%d, %d) = %d, want %d", tt.window, tt.preferred, got, tt.want)
		}
	}
}

func TestBody(t *testing.T) {
	list, bar := Body(80, 20, 6, ContentOpts{HeaderHeight: 1, FooterHeight: 1})

	if list != (Rect{X: 0, Y: 1, Width: 74, Height: 18}) {
		t.Errorf("list = %+v", list)
	}
	if bar != (Rect{X: 74, Y: 1, Width: 6, Height: 18}) {
		t.Errorf("bar = %+v", bar)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 74, Y: 1, Width: 6, Height: 18}

	tests := []struct {
		x, y int
		want bool
	}{
		{74, 1, true},
		{79, 18, true},
		{73, 5, false},
		{80, 5, false},
		{75, 0, false},
		{75, 19, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	x, y := Center(Rect{X: 0, Y: 1, Width: 74, Height: 18}, 7, 3)
	if x != 33 || y != 8 {
		t.Errorf("Center = (%d, %d), want (33, 8)", x, y)
	}

	x, y = Center(Rect{X: 2, Y: 2, Width: 3, Height: 1}, 7, 3)
	if x != 2 || y != 2 {
		t.Errorf("oversized box should sit at the origin, got (%d, %d)", x, y)
	}
}
