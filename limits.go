package toolbox

const (
	MaxInt32 = int32(^uint32(0) >> 1)
	MinInt32 = -MaxInt32 - 1

	MaxInt64 = int64(^uint64(0) >> 1)
	MinInt64 = -MaxInt64 - 1
)

//region digitLimits: decimal magnitude of signed integer extremes
// digitLimits hold the magnitude of the largest and smallest value of a signed
// integer width as decimal digits, most significant digit first.
// They are read only after package initialization.
type digitLimits struct {
	bits int
	max  []byte
	min  []byte
}

var (
	int32Limits = digitLimits{
		bits: 32,
		max:  []byte{2, 1, 4, 7, 4, 8, 3, 6, 4, 7},
		min:  []byte{2, 1, 4, 7, 4, 8, 3, 6, 4, 8},
	}
	int64Limits = digitLimits{
		bits: 64,
		max:  []byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7},
		min:  []byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8},
	}
)

// table select digit table of the magnitude limit based on sign of the value
func (this digitLimits) table(negative bool) []byte {
	if negative {
		return this.min
	}
	return this.max
}

//endregion
