package cbor

import "time"

// DecodeOptions configures resource limits and decode-mode behavior
// for Decode and DecodeWithSourceMap. Every limit here is enforced
// identically by both entry points, since both route through the same
// decodeItem walk (decode.go).
type DecodeOptions struct {
	MaxDepth            int   // 0 disables the check
	MaxArrayLength      int   // 0 disables the check
	MaxMapSize          int   // 0 disables the check
	MaxByteStringLength int   // 0 disables the check
	MaxTextStringLength int   // 0 disables the check
	MaxBignumBytes      int   // 0 disables the check
	MaxOutputSize       int   // 0 disables the check
	TimeoutMs           int64 // 0 disables the check

	AllowIndefinite   bool
	ValidateCanonical bool
	StrictUTF8        bool
	StrictTags        bool
	RFC3339Strict     bool
}

// DefaultDecodeOptions returns sane resource ceilings for decoding
// data from an untrusted source. MaxDepth=128 matches the spec's
// recommendation, far below Go's call-stack ceiling.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		MaxDepth:            128,
		MaxArrayLength:      1 << 20,
		MaxMapSize:          1 << 20,
		MaxByteStringLength: 1 << 26,
		MaxTextStringLength: 1 << 26,
		MaxBignumBytes:      1 << 16,
		MaxOutputSize:       1 << 27,
		TimeoutMs:           0,
		AllowIndefinite:     true,
		ValidateCanonical:   false,
		StrictUTF8:          true,
		StrictTags:          false,
		RFC3339Strict:       true,
	}
}

// limitState is the per-call accountant: depth counter, running output
// size, and a monotonic clock, all frozen against one DecodeOptions
// record for the lifetime of a single top-level Decode call.
type limitState struct {
	opts   DecodeOptions
	depth  int
	output int
	start  time.Time
}

func newLimitState(opts DecodeOptions) *limitState {
	return &limitState{opts: opts, start: time.Now()}
}

// enter increments the depth counter and checks it against MaxDepth.
// Every caller that increments must call leave on every return path
// (defer st.lim.leave() right after a successful enter).
func (s *limitState) enter(offset int, path string) error {
	s.depth++
	if s.opts.MaxDepth > 0 && s.depth > s.opts.MaxDepth {
		return newDecodeError(ErrKindDepthExceeded, offset, path, "maximum nesting depth exceeded")
	}
	return s.checkTimeout(offset, path)
}

func (s *limitState) leave() { s.depth-- }

func (s *limitState) checkTimeout(offset int, path string) error {
	if s.opts.TimeoutMs <= 0 {
		return nil
	}
	if time.Since(s.start) > time.Duration(s.opts.TimeoutMs)*time.Millisecond {
		return newDecodeError(ErrKindTimeout, offset, path, "decode exceeded configured timeout")
	}
	return nil
}

// addOutput accounts for n freshly produced bytes and aborts as soon
// as the running total crosses MaxOutputSize, without having
// allocated anything proportional to the violating quantity (the
// caller passes the size of what it already has in hand, not what it
// intends to allocate next).
func (s *limitState) addOutput(offset int, path string, n int) error {
	s.output += n
	if s.opts.MaxOutputSize > 0 && s.output > s.opts.MaxOutputSize {
		return newDecodeError(ErrKindOutputTooLarge, offset, path, "decoded output exceeds max output size")
	}
	return nil
}

// clampPrealloc bounds a slice preallocation by both a configured
// ceiling and the bytes actually remaining, so a maliciously large
// declared array/map length never drives an allocation proportional
// to an attacker-chosen number rather than to real input size.
func clampPrealloc(n uint64, remaining int) int {
	if remaining < 0 {
		remaining = 0
	}
	if n > uint64(remaining) {
		n = uint64(remaining)
	}
	const hardCap = 1 << 16
	if n > hardCap {
		n = hardCap
	}
	return int(n)
}
