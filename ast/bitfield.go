package ast

// BitField is a struct field whose declared size in bits differs from the
// size of its underlying type. SizeBits (inherited from NodeCommon) holds
// the declared bitfield width; the underlying type's own size lives on
// UnderlyingType's common fields.
type BitField struct {
	NodeCommon
	UnderlyingType     Node
	BitfieldOffsetBits int32
}
