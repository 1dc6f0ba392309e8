package psyq

import "testing"

func TestModuleNameFromPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{name: "short ascii", path: "output.obj", want: "OUTPUT  "},
		{name: "exactly eight", path: "longname.obj", want: "LONGNAME"},
		{name: "truncated ascii", path: "longername.obj", want: "LONGERNA"},
		{name: "directory stripped", path: "/tmp/build/output.obj", want: "OUTPUT  "},
		{name: "first dot wins", path: "out.put.obj", want: "OUT     "},
		{name: "one emoji", path: "👾.obj", want: "👾    "},
		{name: "emoji pair cut short", path: "👾☕☕.obj", want: "👾☕ "},
		{name: "two emoji fill", path: "👾👾.obj", want: "👾👾"},
		{name: "combining mark kept whole", path: "a͢b.obj", want: "A͢B    "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ModuleNameFromPath(tc.path)
			if err != nil {
				t.Fatalf("ModuleNameFromPath(%q) failed: %v", tc.path, err)
			}
			if string(got[:]) != tc.want {
				t.Errorf("got %q, want %q", string(got[:]), tc.want)
			}
		})
	}
}

func TestModuleNameFromPathErrors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{name: "bare dot", path: "."},
		{name: "dotfile", path: ".hidden"},
		{name: "invalid utf-8", path: "bad\xc0name.obj"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ModuleNameFromPath(tc.path); err == nil {
				t.Errorf("ModuleNameFromPath(%q) should fail", tc.path)
			}
		})
	}
}
