package cbor

import "strconv"

// SourceMapEntry describes the exact byte range a single decoded
// value occupied in the input, plus enough structure (parent/children
// paths) to reconstruct the decoded tree without re-walking bytes.
//
// Entries are emitted in pre-order: a value's entry always appears
// before any of its children's entries.
type SourceMapEntry struct {
	Path      string
	Start     int
	End       int
	MajorType uint8
	TypeLabel string
	ValueRepr string

	HasParent bool
	Parent    string
	Children  []string
}

// sourceMapBuilder accumulates entries during a single decode walk.
// begin reserves a slot as soon as a value's header is seen (so the
// offset is correct even though the value's extent isn't known yet);
// finish fills in the remaining fields once decoding that value (and
// everything nested under it) completes.
type sourceMapBuilder struct {
	entries []SourceMapEntry
}

func (sm *sourceMapBuilder) begin(path string, start int) int {
	sm.entries = append(sm.entries, SourceMapEntry{Path: path, Start: start})
	return len(sm.entries) - 1
}

func (sm *sourceMapBuilder) finish(idx int, end int, major uint8, label string, repr string, parent string, hasParent bool, children []string) {
	e := &sm.entries[idx]
	e.End = end
	e.MajorType = major
	e.TypeLabel = label
	e.ValueRepr = repr
	e.HasParent = hasParent
	e.Parent = parent
	e.Children = children
}

// arrayChildPath computes the source-map/structural path of the i-th
// element of an array at parent.
func arrayChildPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// mapKeyPath computes the path used for the key of the i-th pair of a
// map at parent. The spec's path grammar does not name a map key's
// own path (only its value's); see DESIGN.md Open Question 5.
func mapKeyPath(parent string, i int) string {
	return parent + "{k" + strconv.Itoa(i) + "}"
}

// mapValueChildPath computes the path of the value half of the i-th
// pair of a map at parent, given its already-decoded key.
func mapValueChildPath(parent string, key Value, i int) string {
	if key.Kind == KindText {
		return parent + "." + key.Text
	}
	return parent + "[" + diagKeyLabel(key) + "]"
}

// tagChildPath computes the path of a tag's inner value. The spec's
// grammar does not name this either; see DESIGN.md Open Question 6.
func tagChildPath(parent string) string {
	return parent + "<tag>"
}

// diagKeyLabel renders a short, bounded label for a non-text map key,
// used only to build a readable (not necessarily unique) source-map
// path segment.
func diagKeyLabel(v Value) string {
	switch v.Kind {
	case KindUint:
		if u, ok := v.AsUint64(); ok {
			return strconv.FormatUint(u, 10)
		}
		return "bignum"
	case KindNegative:
		if i, ok := v.AsInt64(); ok {
			return strconv.FormatInt(i, 10)
		}
		return "bignum"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBytes:
		return "bytes:" + BytesToHex(truncateRepr(v.bytesFlat(), 16))
	default:
		return v.Kind.String()
	}
}

func truncateRepr(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

// typeLabel returns a short, human-readable label for the decoded
// value's type, used as a source-map entry's TypeLabel.
func typeLabel(v Value) string {
	switch v.Kind {
	case KindUint:
		if v.Big != nil {
			return "bignum"
		}
		return "uint"
	case KindNegative:
		if v.Big != nil {
			return "bignum"
		}
		return "negint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag(" + strconv.FormatUint(v.Tag, 10) + ")"
	case KindSimple:
		return "simple"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindFloat:
		return "float" + strconv.Itoa(int(v.FloatWidth))
	case KindPlutusConstr:
		return "plutus-constr"
	default:
		return "invalid"
	}
}

const maxValueReprLen = 80

// reprValue renders a short, bounded human-readable preview of a
// decoded value for a source-map entry's ValueRepr field.
func reprValue(v Value) string {
	s := reprValueFull(v)
	if len(s) > maxValueReprLen {
		return s[:maxValueReprLen-1] + "…"
	}
	return s
}

func reprValueFull(v Value) string {
	switch v.Kind {
	case KindUint:
		if v.Big != nil {
			return v.Big.String()
		}
		return strconv.FormatUint(v.Uint64, 10)
	case KindNegative:
		if v.Big != nil {
			return v.Big.String()
		}
		return strconv.FormatInt(v.Int64, 10)
	case KindBytes:
		return "h'" + BytesToHex(v.bytesFlat()) + "'"
	case KindText:
		return strconv.Quote(v.Text)
	case KindArray:
		return "array[" + strconv.Itoa(len(v.Array)) + "]"
	case KindMap:
		return "map[" + strconv.Itoa(len(v.Map)) + "]"
	case KindTag:
		return "tag(" + strconv.FormatUint(v.Tag, 10) + ")"
	case KindSimple:
		return "simple(" + strconv.Itoa(int(v.Simple)) + ")"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindFloat:
		if v.NegativeZero {
			return "-0"
		}
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindPlutusConstr:
		return "constr(" + strconv.FormatUint(v.PlutusConstr, 10) + ")[" + strconv.Itoa(len(v.PlutusFields)) + "]"
	default:
		return "?"
	}
}
