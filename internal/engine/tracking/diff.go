package tracking

// DiffOptions configures the Myers detector.
type DiffOptions struct {
	// MaxLines limits the number of lines handed to the Myers algorithm.
	// Above it a heuristic matcher is used. 0 selects DefaultMaxDiffLines,
	// a negative value disables the limit.
	MaxLines int

	// MaxMemoryMB limits the estimated memory of the Myers trace.
	// 0 selects DefaultMaxDiffMemoryMB, a negative value disables the limit.
	MaxMemoryMB int
}

// Default limits for diff computation.
const (
	// DefaultMaxDiffLines is the default maximum lines for Myers diff.
	DefaultMaxDiffLines = 10000

	// DefaultMaxDiffMemoryMB is the default memory limit in megabytes.
	DefaultMaxDiffMemoryMB = 100
)

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		MaxLines:    DefaultMaxDiffLines,
		MaxMemoryMB: DefaultMaxDiffMemoryMB,
	}
}

// MyersDetector reports every inserted and deleted hunk between two texts.
//
// Hunks where lines were both removed and added are folded: the overlapping
// part counts as substitution and only the surplus is reported, so a line
// edited in place never shifts anything.
type MyersDetector struct {
	opts DiffOptions
}

// NewMyersDetector creates a Myers detector with the given options.
func NewMyersDetector(opts DiffOptions) *MyersDetector {
	return &MyersDetector{opts: opts}
}

// Detect implements Detector.
func (d *MyersDetector) Detect(oldLines, newLines []string) Delta {
	if len(oldLines) == len(newLines) && equalLines(oldLines, newLines) {
		return Delta{}
	}
	return Delta{Edits: editsFromOps(d.script(oldLines, newLines))}
}

// script picks Myers or the heuristic matcher depending on input size.
func (d *MyersDetector) script(oldLines, newLines []string) []editOp {
	n, m := len(oldLines), len(newLines)

	maxLines := d.opts.MaxLines
	if maxLines == 0 {
		maxLines = DefaultMaxDiffLines
	}
	if maxLines > 0 && (n > maxLines || m > maxLines) {
		return heuristicDiff(oldLines, newLines)
	}

	// Myers keeps one V vector copy per edit distance step: O((n+m)^2) ints
	// in the worst case.
	maxMemMB := d.opts.MaxMemoryMB
	if maxMemMB == 0 {
		maxMemMB = DefaultMaxDiffMemoryMB
	}
	if maxMemMB > 0 {
		maxD := int64(n + m)
		estimatedMB := maxD * (2*maxD + 1) * 8 / (1024 * 1024)
		if estimatedMB > int64(maxMemMB) {
			return heuristicDiff(oldLines, newLines)
		}
	}

	return myersDiff(oldLines, newLines)
}

func equalLines(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// editOpKind is the type of a single edit script step.
type editOpKind uint8

const (
	opEqual editOpKind = iota
	opInsert
	opDelete
)

// editOp represents a single edit operation in the diff.
type editOp struct {
	op       editOpKind
	oldIndex int
	newIndex int
}

// editsFromOps converts an edit script into ordered line edits. Positions
// are expressed in the numbering produced by the preceding edits, which is
// the new text's numbering up to the current point.
func editsFromOps(ops []editOp) []LineEdit {
	var edits []LineEdit
	cur := 0 // 0-based line index in the partially edited text

	for i := 0; i < len(ops); {
		if ops[i].op == opEqual {
			cur++
			i++
			continue
		}

		deleted, inserted := 0, 0
		for i < len(ops) && ops[i].op != opEqual {
			if ops[i].op == opDelete {
				deleted++
			} else {
				inserted++
			}
			i++
		}

		switch {
		case inserted > deleted:
			edits = append(edits, LineEdit{Kind: EditInsert, Position: cur + deleted + 1, Count: inserted - deleted})
		case deleted > inserted:
			edits = append(edits, LineEdit{Kind: EditDelete, Position: cur + inserted + 1, Count: deleted - inserted})
		}
		cur += inserted
	}

	return edits
}

// heuristicDiff provides a simple line matcher for large inputs.
// It's less optimal than Myers but uses O(n+m) memory.
func heuristicDiff(oldLines, newLines []string) []editOp {
	n := len(oldLines)
	m := len(newLines)

	oldLineMap := make(map[string][]int)
	for i, line := range oldLines {
		oldLineMap[line] = append(oldLineMap[line], i)
	}

	matched := make([]bool, n)
	newMatched := make([]bool, m)

	for j, line := range newLines {
		for _, i := range oldLineMap[line] {
			if !matched[i] {
				matched[i] = true
				newMatched[j] = true
				break
			}
		}
	}

	var ops []editOp
	i, j := 0, 0
	for i < n || j < m {
		for i < n && j < m && matched[i] && newMatched[j] {
			ops = append(ops, editOp{op: opEqual, oldIndex: i, newIndex: j})
			i++
			j++
		}
		for i < n && !matched[i] {
			ops = append(ops, editOp{op: opDelete, oldIndex: i})
			i++
		}
		for j < m && !newMatched[j] {
			ops = append(ops, editOp{op: opInsert, newIndex: j})
			j++
		}
	}

	return ops
}

// myersDiff implements the Myers diff algorithm.
// Returns a sequence of edit operations.
func myersDiff(oldLines, newLines []string) []editOp {
	n := len(oldLines)
	m := len(newLines)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		ops := make([]editOp, m)
		for i := 0; i < m; i++ {
			ops[i] = editOp{op: opInsert, newIndex: i}
		}
		return ops
	}
	if m == 0 {
		ops := make([]editOp, n)
		for i := 0; i < n; i++ {
			ops[i] = editOp{op: opDelete, oldIndex: i}
		}
		return ops
	}

	maxD := n + m
	offset := maxD // V[-max..max] maps to slice[0..2*max]
	v := make([]int, 2*maxD+1)

	var trace [][]int

outer:
	for d := 0; d <= maxD; d++ {
		// Save trace before processing this d; backtracking needs the
		// previous step's state.
		vCopy := make([]int, len(v))
		copy(vCopy, v)
		trace = append(trace, vCopy)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}

			y := x - k

			for x < n && y < m && oldLines[x] == newLines[y] {
				x++
				y++
			}

			v[offset+k] = x

			if x >= n && y >= m {
				vFinal := make([]int, len(v))
				copy(vFinal, v)
				trace = append(trace, vFinal)
				break outer
			}
		}
	}

	return backtrack(trace, n, m, offset)
}

// backtrack reconstructs the edit script from the trace.
func backtrack(trace [][]int, n, m, offset int) []editOp {
	if len(trace) == 0 {
		return nil
	}

	x := n
	y := m
	var ops []editOp

	// trace has d+1 entries for edit distance d plus the final state.
	for d := len(trace) - 2; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, editOp{op: opEqual, oldIndex: x, newIndex: y})
		}

		if d > 0 {
			if x > prevX {
				x--
				ops = append(ops, editOp{op: opDelete, oldIndex: x})
			} else if y > prevY {
				y--
				ops = append(ops, editOp{op: opInsert, newIndex: y})
			}
		}
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}
