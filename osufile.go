package main

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// looksLikeOsuFile checks for the "osu file format vN" header line. The
// direct download endpoint answers 200 with an empty body for unknown
// ids, so the body has to be sniffed.
func looksLikeOsuFile(raw []byte) bool {
	line, _, _ := bytes.Cut(raw, []byte("\n"))
	return strings.Contains(string(line), "osu file format v")
}

// osuFileBeatmapID scans the [Metadata] section for the BeatmapID key.
// This is the only piece of .osu content this tool interprets; the file
// itself passes to the calculator untouched.
func osuFileBeatmapID(raw []byte) (int, bool) {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	inMetadata := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			inMetadata = strings.EqualFold(line, "[Metadata]")
			continue
		}
		if !inMetadata {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) != "BeatmapID" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
