package sysinfo

import (
	"strings"
	"testing"
)

// --- Sample data for parsing tests ---

const sampleCPUInfo = `processor	: 0
vendor_id	: GenuineIntel
cpu family	: 6
model		: 158
model name	: Example CPU @ 3.00GHz
stepping	: 10
cpu MHz		: 3000.000
cache size	: 12288 KB
physical id	: 0
siblings	: 16
core id		: 0
cpu cores	: 8
`

const sampleCPUInfoNoFreq = `model name	: ExampleSoc Eight-Core Processor
cpu cores	: 8
`

const sampleMemInfo = `MemTotal:       16384000 kB
MemFree:         2048000 kB
MemAvailable:    8000000 kB
Buffers:          512000 kB
Cached:          4096000 kB
`

const sampleSystemVersion = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ProductBuildVersion</key>
	<string>23H124</string>
	<key>ProductName</key>
	<string>macOS</string>
	<key>ProductVersion</key>
	<string>14.7</string>
</dict>
</plist>
`

// --- CPU descriptor ---

func TestParseCPUInfo(t *testing.T) {
	got := siParseCPUInfo(sampleCPUInfo)
	want := "Example CPU (8) @ 3.00GHz"
	if got != want {
		t.Errorf("siParseCPUInfo = %q, want %q", got, want)
	}
}

func TestParseCPUInfoNoFrequency(t *testing.T) {
	got := siParseCPUInfo(sampleCPUInfoNoFreq)
	want := "ExampleSoc Eight-Core Processor (8)"
	if got != want {
		t.Errorf("siParseCPUInfo = %q, want %q", got, want)
	}
}

func TestParseCPUInfoMissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no model", "cpu cores\t: 8\n"},
		{"no cores", "model name\t: Example CPU @ 3.00GHz\n"},
		{"garbage", "not a cpuinfo file at all\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := siParseCPUInfo(tt.in); got != "" {
				t.Errorf("siParseCPUInfo(%q) = %q, want absent", tt.in, got)
			}
		})
	}
}

func TestColonValue(t *testing.T) {
	if got := siColonValue("model name\t: Example CPU"); got != "Example CPU" {
		t.Errorf("siColonValue = %q", got)
	}
	if got := siColonValue("no delimiter here"); got != "" {
		t.Errorf("siColonValue on colonless line = %q, want empty", got)
	}
}

// --- Memory descriptor ---

func TestParseMemInfo(t *testing.T) {
	got := siParseMemInfo(sampleMemInfo)
	// (16384000 - 8000000) kB and 16384000 kB, shifted to bytes, two
	// decimal places.
	want := "8.00 GiB / 15.62 GiB"
	if got != want {
		t.Errorf("siParseMemInfo = %q, want %q", got, want)
	}
}

func TestParseMemInfoCollapses(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing available", "MemTotal: 16384000 kB\n"},
		{"missing total", "MemAvailable: 8000000 kB\n"},
		{"available exceeds total", "MemTotal: 100 kB\nMemAvailable: 200 kB\n"},
		{"non-numeric", "MemTotal: lots kB\nMemAvailable: some kB\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := siParseMemInfo(tt.in); got != "" {
				t.Errorf("siParseMemInfo(%q) = %q, want absent", tt.in, got)
			}
		})
	}
}

// --- Locale precedence ---

func TestLocalePrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"lang wins", map[string]string{"LANG": "en_US.UTF-8", "LC_ALL": "C"}, "en_US.UTF-8"},
		{"empty lang falls through", map[string]string{"LANG": "", "LC_ALL": "de_DE.UTF-8"}, "de_DE.UTF-8"},
		{"lc_messages last", map[string]string{"LC_MESSAGES": "fr_FR.UTF-8"}, "fr_FR.UTF-8"},
		{"nothing set", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := siLocale(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("siLocale = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Uptime formatting ---

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{42, "42s"},
		{60, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{86400, "1d 0h 0m"},
		{90061, "1d 1h 1m"},
		{13*86400 + 5*3600 + 30*60, "13d 5h 30m"},
	}
	for _, tt := range tests {
		if got := siFormatUptime(tt.seconds); got != tt.want {
			t.Errorf("siFormatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// --- Battery charge ---

func TestBatteryPercent(t *testing.T) {
	tests := []struct {
		name          string
		current, full float64
		want          string
	}{
		{"mid charge", 43.21, 100, "43%"},
		{"full", 5200, 5200, "100%"},
		{"rounds to whole percent", 866.6, 1000, "87%"},
		{"zero capacity", 500, 0, ""},
		{"negative capacity", 500, -1, ""},
		{"negative charge", -1, 1000, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := siBatteryPercent(tt.current, tt.full); got != tt.want {
				t.Errorf("siBatteryPercent(%v, %v) = %q, want %q", tt.current, tt.full, got, tt.want)
			}
		})
	}
}

// --- SystemVersion plist ---

func TestPlistString(t *testing.T) {
	if got := siPlistString(sampleSystemVersion, "ProductName"); got != "macOS" {
		t.Errorf("ProductName = %q", got)
	}
	if got := siPlistString(sampleSystemVersion, "ProductVersion"); got != "14.7" {
		t.Errorf("ProductVersion = %q", got)
	}
	if got := siPlistString(sampleSystemVersion, "NoSuchKey"); got != "" {
		t.Errorf("NoSuchKey = %q, want empty", got)
	}
	if got := siPlistString("<key>X</key><integer>3</integer>", "X"); got != "" {
		t.Errorf("non-string value = %q, want empty", got)
	}
}

// --- Small helpers ---

func TestCString(t *testing.T) {
	if got := siCString([]byte{'u', 'b', 'u', 0, 0, 0}); got != "ubu" {
		t.Errorf("siCString = %q", got)
	}
	if got := siCString([]byte("noterm")); got != "noterm" {
		t.Errorf("siCString without NUL = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := siFirstLine("1920x1080\n1280x1024\n"); got != "1920x1080" {
		t.Errorf("siFirstLine = %q", got)
	}
	if got := siFirstLine("  solo  "); got != "solo" {
		t.Errorf("siFirstLine single = %q", got)
	}
}

// --- Capability contract ---

func TestProberNeverPanics(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Every operation must answer without error or panic; absent fields
	// are empty, not failures.
	_ = p.OS()
	_ = p.ID()
	_ = p.Hostname()
	_ = p.Machine()
	_ = p.Kernel()
	_ = p.CPU()
	_ = p.Memory()
	_ = p.Disks()
	_ = p.IPs()
	_ = p.GPUs()
	_ = p.Battery()
	_ = p.Locale()
	_ = p.Uptime()
	_ = p.Username()
	_ = p.Shell()
	_ = p.Displays()
}

func TestProberDesktopFieldsAbsent(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for name, v := range map[string]string{
		"Theme": p.Theme(), "WM": p.WM(), "DE": p.DE(), "Icons": p.Icons(),
		"Terminal": p.Terminal(), "SysFont": p.SysFont(),
		"Cursor": p.Cursor(), "TermFont": p.TermFont(),
	} {
		if v != "" {
			t.Errorf("%s = %q, want absent", name, v)
		}
	}
}

func TestProberIPsShape(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ips := p.IPs()
	if ips == nil {
		// Gathering can fail in restricted environments; that collapses
		// to an empty list and is fine.
		t.Skip("address gathering unavailable")
	}
	if len(ips) != 1 {
		t.Fatalf("IPs returned %d elements, want 1", len(ips))
	}
	for _, part := range strings.Split(ips[0], ", ") {
		if strings.Contains(part, ":") {
			t.Errorf("IPv6 address leaked into output: %q", part)
		}
		if strings.HasPrefix(part, "127.") {
			t.Errorf("loopback address in output: %q", part)
		}
	}
}
