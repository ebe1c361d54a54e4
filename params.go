package freqidx

// GlobalParameters is the codec-tuning surface of a FreqIndex. It is set once
// at builder construction, carried unchanged through to the finished index,
// and persisted as part of the serialized blob (see serialization.go).
//
// Quantum is reserved for a partitioned Elias-Fano variant (sampling every
// Quantum-th high-bit position to bound next_geq/move cost); the reference
// codec in eliasfano.go does not yet read it. It is still threaded through
// and serialized so a later partitioned codec can be dropped in without
// touching the index layout. See DESIGN.md for the tradeoff this accepts.
type GlobalParameters struct {
	Quantum uint64
}

// DefaultGlobalParameters returns parameters matching the reference codec.
func DefaultGlobalParameters() GlobalParameters {
	return GlobalParameters{Quantum: 128}
}
