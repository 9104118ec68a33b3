package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.glsl", 10, 5),
			wantStr: "test.glsl:10:5",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10, 5),
			wantStr: "10:5",
		},
		{
			name:    "line 1 col 1",
			pos:     NewPos("main.glsl", 1, 1),
			wantStr: "main.glsl:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{
			name:  "valid position",
			pos:   NewPos("test.glsl", 1, 1),
			valid: true,
		},
		{
			name:  "valid position line 100",
			pos:   NewPos("", 100, 50),
			valid: true,
		},
		{
			name:  "invalid - zero line",
			pos:   NewPos("test.glsl", 0, 1),
			valid: false,
		},
		{
			name:  "invalid - zero value",
			pos:   Pos{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosGetters(t *testing.T) {
	pos := NewPos("test.glsl", 42, 13)

	if got := pos.Line(); got != 42 {
		t.Errorf("Pos.Line() = %d, want 42", got)
	}

	if got := pos.Col(); got != 13 {
		t.Errorf("Pos.Col() = %d, want 13", got)
	}

	if got := pos.Filename(); got != "test.glsl" {
		t.Errorf("Pos.Filename() = %q, want %q", got, "test.glsl")
	}
}

func TestNewPos(t *testing.T) {
	pos := NewPos("file.glsl", 5, 10)

	if pos.filename != "file.glsl" {
		t.Errorf("filename = %q, want %q", pos.filename, "file.glsl")
	}
	if pos.line != 5 {
		t.Errorf("line = %d, want 5", pos.line)
	}
	if pos.col != 10 {
		t.Errorf("col = %d, want 10", pos.col)
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		in      string
		want    Pos
		wantErr bool
	}{
		{in: "", want: NoPos},
		{in: "3:7", want: NewPos("", 3, 7)},
		{in: "shader.glsl:12:4", want: NewPos("shader.glsl", 12, 4)},
		{in: "C:/src/a.glsl:1:2", want: NewPos("C:/src/a.glsl", 1, 2)},
		{in: "12", wantErr: true},
		{in: "a.glsl:x:1", wantErr: true},
		{in: "a.glsl:1:-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePos(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePos(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePos(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	pos := NewPos("main.glsl", 9, 21)
	got, err := ParsePos(pos.String())
	if err != nil {
		t.Fatalf("ParsePos: %v", err)
	}
	if got != pos {
		t.Errorf("round trip = %v, want %v", got, pos)
	}
}
