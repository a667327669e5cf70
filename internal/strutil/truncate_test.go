package strutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty string", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 5, "hello..."},
		{"single char", "a", 1, "a"},
		{"single char truncated", "ab", 1, "a..."},

		{"negative maxLen", "hello", -1, ""},
		{"zero maxLen", "hello", 0, ""},

		// Unicode safety - multi-byte characters
		{"chinese exact", "中文测试", 4, "中文测试"},
		{"chinese truncated", "中文测试abc", 4, "中文测试..."},
		{"emoji", "hello 🎉 world", 8, "hello 🎉 ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty string", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"clipped without marker", "hello world", 5, "hello"},
		{"zero maxLen", "hello", 0, ""},
		{"negative maxLen", "hello", -3, ""},
		{"chinese clipped", "中文测试", 2, "中文"},
		{"emoji boundary", "a🎉b", 2, "a🎉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clip(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestClipNeverExceedsBound(t *testing.T) {
	inputs := []string{"", "abc", "中文测试很长的一段文字", "hello 🎉 world 🎉 again"}
	for _, in := range inputs {
		for _, max := range []int{0, 1, 3, 5, 100} {
			if got := Clip(in, max); len([]rune(got)) > max {
				t.Errorf("Clip(%q, %d) produced %d runes", in, max, len([]rune(got)))
			}
		}
	}
}
