package tzx

import "retroio/storage"

// RecoveryEnum reads a tagged value from the stream: record the current
// position, read the raw tag byte, then let decode attempt to resolve it to
// a known variant of T with the reader positioned just after the tag. If
// decode fails, the stream is repositioned one byte past the original tag
// and Known is false, so the caller can treat Raw as an opaque
// "unrecognised" value and keep scanning forward. Used for BlockKind,
// archive-info entry kinds, and hardware-type categories: anywhere a file
// may carry a tag this build does not recognise and recovery should not be
// fatal.
type RecoveryEnum[T any] struct {
	Known bool
	Value T
	Raw   byte
}

// DecodeRecovery runs the record/speculate/rewind protocol described above.
// decode is given the raw tag byte and the reader positioned just after it;
// it returns the decoded value and whether the tag was recognised.
func DecodeRecovery[T any](r *storage.Reader, decode func(tag byte, r *storage.Reader) (T, bool)) (RecoveryEnum[T], error) {
	pos := r.Pos()
	raw, err := r.ReadByte()
	if err != nil {
		return RecoveryEnum[T]{}, err
	}

	value, ok := decode(raw, r)
	if ok {
		return RecoveryEnum[T]{Known: true, Value: value, Raw: raw}, nil
	}

	if err := r.SeekTo(pos + 1); err != nil {
		return RecoveryEnum[T]{}, err
	}
	return RecoveryEnum[T]{Known: false, Raw: raw}, nil
}
