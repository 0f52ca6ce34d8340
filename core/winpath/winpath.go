// Package winpath splits Windows pathnames without touching the
// filesystem. The semantics mirror Python's ntpath module: both the
// backslash and the forward slash count as separators and drive
// letters and UNC sharepoints are kept with the head of the path.
package winpath

import "strings"

// SplitDrive splits a pathname into a drive letter or UNC sharepoint
// and the relative path that follows it. Either part may be empty.
func SplitDrive(path string) (drive, rest string) {
	if len(path) < 2 {
		return "", path
	}

	norm := strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(norm, `\\`) && !strings.HasPrefix(norm[2:], `\`) {
		// UNC path:
		// vvvvvvvvvvvvvvvvvvvv drive letter or UNC path
		// \\machine\mountpoint\directory\etc\...
		//           directory ^^^^^^^^^^^^^^^
		i := strings.Index(norm[2:], `\`)
		if i == -1 {
			return "", path
		}
		i += 2

		j := strings.Index(norm[i+1:], `\`)
		// A UNC path can't have two separators in a row after the
		// initial two.
		if j == 0 {
			return "", path
		}
		if j == -1 {
			j = len(path)
		} else {
			j += i + 1
		}
		return path[:j], path[j:]
	}

	if norm[1] == ':' {
		return path[:2], path[2:]
	}
	return "", path
}

// Split splits a pathname into a (head, tail) pair where tail is the
// last component and head is everything leading up to it. Trailing
// separators are removed from head unless it is all separators.
func Split(path string) (head, tail string) {
	drive, p := SplitDrive(path)

	// Walk i back to just past p's last separator.
	i := len(p)
	for i > 0 && p[i-1] != '\\' && p[i-1] != '/' {
		i--
	}
	head, tail = p[:i], p[i:]

	if trimmed := strings.TrimRight(head, `\/`); trimmed != "" {
		head = trimmed
	}
	return drive + head, tail
}
