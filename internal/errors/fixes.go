package errors

import (
	"sort"
)

// ApplyFixes rewrites source with the first located suggestion of each
// error. Fixes are applied from the end of the source so earlier offsets
// stay valid; a fix overlapping one already applied is skipped. It returns
// the new source and the number of fixes applied.
func ApplyFixes(source string, errs []CompilerError) (string, int) {
	var fixes []Suggestion
	for _, err := range errs {
		for _, s := range err.Suggestions {
			if s.Located() && s.Position.Offset >= 0 && s.Position.Offset+s.Length <= len(source) {
				fixes = append(fixes, s)
				break
			}
		}
	}
	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Position.Offset > fixes[j].Position.Offset
	})

	applied := 0
	limit := len(source)
	for _, fix := range fixes {
		end := fix.Position.Offset + fix.Length
		if end > limit {
			continue
		}
		source = source[:fix.Position.Offset] + fix.Replacement + source[end:]
		limit = fix.Position.Offset
		applied++
	}
	return source, applied
}
