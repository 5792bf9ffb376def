package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func fakeDetector(info *host.InfoStat, err error, env string) *Detector {
	return &Detector{
		info: func(context.Context) (*host.InfoStat, error) { return info, err },
		getenv: func(key string) string {
			if key == OverrideEnv {
				return env
			}
			return ""
		},
		goos: "plan9",
	}
}

func TestNewDetector(t *testing.T) {
	d := NewDetector()
	if d == nil {
		t.Fatal("NewDetector() returned nil")
	}
	// Real detection must not panic and must return something.
	if got := d.Detect(); got == "" {
		t.Error("Detect() returned empty platform")
	}
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name string
		info *host.InfoStat
		err  error
		env  string
		want string
	}{
		{"windows", &host.InfoStat{OS: "windows"}, nil, "", "windows"},
		{"darwin", &host.InfoStat{OS: "darwin"}, nil, "", "darwin"},
		{"linux", &host.InfoStat{OS: "linux", KernelVersion: "6.5.0-generic"}, nil, "", "linux"},
		{"wsl", &host.InfoStat{OS: "linux", KernelVersion: "5.15.153.1-microsoft-standard-WSL2"}, nil, "", "windows-wsl"},
		{"lookup error falls back to GOOS", nil, errors.New("boom"), "", "plan9"},
		{"empty info falls back to GOOS", &host.InfoStat{}, nil, "", "plan9"},
		{"override wins", &host.InfoStat{OS: "linux"}, nil, "Windows", "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fakeDetector(tt.info, tt.err, tt.env)
			if got := d.Detect(); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
