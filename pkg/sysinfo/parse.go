package sysinfo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/casually-blue/mirafetch/pkg/bytefmt"
)

// memRe matches the MemTotal and MemAvailable lines of a memory
// descriptor; values are in kilobytes.
var memRe = regexp.MustCompile(`Mem(Total|Available):\s*(\d+)`)

// siParseCPUInfo extracts the CPU model and core count from cpuinfo text.
// The fields of interest are the first lines labelled "model name" and
// "cpu cores", colon-delimited. Models carrying a nominal frequency render
// as "<model> (<cores>) @ <freq>", others as "<model> (<cores>)".
func siParseCPUInfo(text string) string {
	var model, cores string
	for _, line := range strings.Split(text, "\n") {
		if model == "" && strings.HasPrefix(line, "model name") {
			model = siColonValue(line)
		}
		if cores == "" && strings.HasPrefix(line, "cpu cores") {
			cores = siColonValue(line)
		}
		if model != "" && cores != "" {
			break
		}
	}
	if model == "" || cores == "" {
		return ""
	}
	if name, freq, ok := strings.Cut(model, "@"); ok {
		return fmt.Sprintf("%s (%s) @ %s", strings.TrimSpace(name), cores, strings.TrimSpace(freq))
	}
	return fmt.Sprintf("%s (%s)", model, cores)
}

// siColonValue returns the trimmed right-hand side of a "label : value"
// line, or "" when the line has no colon.
func siColonValue(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// siParseMemInfo computes "<used> / <total>" from memory descriptor text,
// where used is MemTotal minus MemAvailable, both shifted from kilobytes
// to bytes and rendered with two decimals. Missing fields or an available
// value exceeding the total collapse to "".
func siParseMemInfo(text string) string {
	var total, avail uint64
	var haveTotal, haveAvail bool
	for _, m := range memRe.FindAllStringSubmatch(text, -1) {
		var v uint64
		if _, err := fmt.Sscanf(m[2], "%d", &v); err != nil {
			continue
		}
		switch m[1] {
		case "Total":
			total, haveTotal = v, true
		case "Available":
			avail, haveAvail = v, true
		}
	}
	if !haveTotal || !haveAvail || avail > total {
		return ""
	}
	return bytefmt.Format((total-avail)<<10, 2) + " / " + bytefmt.Format(total<<10, 2)
}

// siLocale resolves the locale from the environment, preferring LANG,
// then LC_ALL, then LC_MESSAGES, skipping unset and empty values.
func siLocale(getenv func(string) string) string {
	for _, key := range []string{"LANG", "LC_ALL", "LC_MESSAGES"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// siFormatUptime renders an uptime in seconds as "3d 4h 25m", dropping
// leading zero units. Sub-minute uptimes render as seconds.
func siFormatUptime(seconds uint64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// siBatteryPercent renders a charge as a whole percentage of capacity. A
// non-positive capacity or negative charge collapses to "".
func siBatteryPercent(current, full float64) string {
	if full <= 0 || current < 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%%", current/full*100)
}

// siPlistString extracts the string value following a named key in
// property-list XML. Only flat string dictionaries (SystemVersion.plist)
// are supported; anything else collapses to "".
func siPlistString(text, key string) string {
	idx := strings.Index(text, "<key>"+key+"</key>")
	if idx < 0 {
		return ""
	}
	rest := text[idx:]
	start := strings.Index(rest, "<string>")
	if start < 0 {
		return ""
	}
	rest = rest[start+len("<string>"):]
	end := strings.Index(rest, "</string>")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// siFirstLine returns text up to the first newline, trimmed.
func siFirstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
