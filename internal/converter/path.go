package converter

import "strings"

const (
	subtitleExt = ".srt"
	textExt     = ".txt"
	englishExt  = ".en.txt"
)

// IsSubtitle reports whether path names an SRT file. The check is
// case-sensitive: "movie.SRT" is not a subtitle.
func IsSubtitle(path string) bool {
	return strings.HasSuffix(path, subtitleExt)
}

// OutputPath derives the text file path for an SRT path. Every ".srt" becomes
// ".txt", then every ".en.txt" collapses to ".txt". Each substitution is a
// single pass.
func OutputPath(srtPath string) string {
	out := strings.ReplaceAll(srtPath, subtitleExt, textExt)
	return strings.ReplaceAll(out, englishExt, textExt)
}
