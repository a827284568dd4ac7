package mdebug

// Fixed-layout, little-endian binary records making up an mdebug section.
// These mirror the original MIPS toolchain's on-disk structures exactly —
// byte for byte, not host-native struct packing — per §9's rule that packed
// bitfields must be decoded with explicit mask-and-shift, never a compiler's
// native bit-field layout.

// symbolicHeaderRaw is the raw, on-disk form of the 0x60-byte SymbolicHeader.
type symbolicHeaderRaw struct {
	Magic               int16
	VersionStamp        int16
	LineNumberCount     int32
	LineNumbersSize     int32
	LineNumbersOffset   int32
	DenseNumberCount    int32
	DenseNumbersOffset  int32
	ProcDescCount       int32
	ProcDescOffset      int32
	LocalSymbolCount    int32
	LocalSymbolsOffset  int32
	OptSymbolCount      int32
	OptSymbolsOffset    int32
	AuxSymbolCount      int32
	AuxSymbolsOffset    int32
	LocalStringsSize    int32
	LocalStringsOffset  int32
	ExternStringsSize   int32
	ExternStringsOffset int32
	FileDescCount       int32
	FileDescOffset      int32
	RelFileDescCount    int32
	RelFileDescOffset   int32
	ExternSymbolCount   int32
	ExternSymbolsOffset int32
}

const symbolicHeaderSize = 0x60

// expectedMagic is the magic value every valid SymbolicHeader must carry.
const expectedMagic = 0x7009

// SymbolicHeader is the decoded form of the mdebug section's fixed 0x60-byte
// header: a magic number, a version stamp, and 23 int32 count/size/offset
// fields locating every sub-table in the section.
type SymbolicHeader struct {
	Magic        int16
	VersionStamp int16

	LineNumberCount    int32
	LineNumbersSize    int32
	LineNumbersOffset  int32
	DenseNumberCount   int32
	DenseNumbersOffset int32

	ProcedureDescriptorCount  int32
	ProcedureDescriptorOffset int32

	LocalSymbolCount  int32
	LocalSymbolOffset int32

	OptimizationSymbolCount  int32
	OptimizationSymbolOffset int32

	AuxiliarySymbolCount  int32
	AuxiliarySymbolOffset int32

	LocalStringsSize   int32
	LocalStringsOffset int32

	ExternalStringsSize   int32
	ExternalStringsOffset int32

	FileDescriptorCount  int32
	FileDescriptorOffset int32

	RelativeFileDescriptorCount  int32
	RelativeFileDescriptorOffset int32

	ExternalSymbolCount  int32
	ExternalSymbolOffset int32
}

// fileDescriptorRaw is the raw, on-disk form of the 0x48-byte FileDescriptor.
type fileDescriptorRaw struct {
	Address              uint32
	FilePathStringOffset int32
	StringsOffset        int32
	CbSS                 int32
	IsymBase             int32
	SymbolCount          int32
	IlineBase            int32
	Cline                int32
	IoptBase             int32
	Copt                 int32
	IpdFirst             int16
	Cpd                  int16
	IauxBase             int32
	Caux                 int32
	RfdBase              int32
	Crfd                 int32
	Packed               uint32 // lang:5, merge:1, readin:1, big_endian:1, reserved:24
	CbLineOffset         int32
	CbLine               int32
}

const fileDescriptorSize = 0x48

// Packed-word bit layout of fileDescriptorRaw.Packed.
const (
	fdLangShift, fdLangWidth           = 0, 5
	fdMergeShift, fdMergeWidth         = 5, 1
	fdReadInShift, fdReadInWidth       = 6, 1
	fdBigEndianShift, fdBigEndianWidth = 7, 1
)

// FileDescriptor is the decoded form of one 0x48-byte mdebug file
// descriptor: the compilation unit's address, string/symbol table bases and
// counts, and the packed language/merge/readin/endianness bits.
type FileDescriptor struct {
	Address              uint32
	FilePathStringOffset int32
	StringsOffset        int32
	SymbolStringsSize    int32
	IsymBase             int32
	SymbolCount          int32
	LineBase             int32
	LineCount            int32
	ProcedureBase        int32
	ProcedureCount       int32
	AuxiliaryBase        int32
	AuxiliaryCount       int32
	RelativeFileBase     int32
	RelativeFileCount    int32

	Lang      uint32
	Merge     bool
	ReadIn    bool
	BigEndian bool
}

// procedureDescriptorRaw is the raw, on-disk form of the 0x34-byte
// ProcedureDescriptor. Deliberately unused — see §9 Open Question 1: the
// original tool's procedure-descriptor traversal is commented out as buggy,
// and this port preserves that and leaves the table untouched. The layout
// is recorded here so a later, correct implementation does not have to
// rediscover it.
type procedureDescriptorRaw struct {
	Address      uint32
	Isym         int32
	Iline        int32
	RegMask      int32
	RegOffset    int32
	Iopt         int32
	FRegMask     int32
	FRegOffset   int32
	FrameOffset  int32
	FrameReg     int16
	PcReg        int16
	LnLow        int32
	LnHigh       int32
	CbLineOffset int32
}

const procedureDescriptorSize = 0x34

// localSymbolRaw is the raw, on-disk form of the 12-byte LocalSymbol.
type localSymbolRaw struct {
	Iss    uint32
	Value  int32
	Packed uint32 // st:6, sc:5, reserved:1, index:20
}

const localSymbolSize = 0x0c

const (
	symStShift, symStWidth       = 0, 6
	symScShift, symScWidth       = 6, 5
	symIndexShift, symIndexWidth = 12, 20
)

// SymbolType is the STABS symbol-type tag (the `st` packed field).
type SymbolType uint32

const (
	SymNil SymbolType = iota
	SymGlobal
	SymStatic
	SymParam
	SymLocal
	SymLabel
	SymProc
	SymBlock
	SymEnd
	SymMember
	SymTypedef
	SymFile
	SymStaticProc
	SymConstant
)

func (t SymbolType) String() string {
	switch t {
	case SymNil:
		return "NIL"
	case SymGlobal:
		return "GLOBAL"
	case SymStatic:
		return "STATIC"
	case SymParam:
		return "PARAM"
	case SymLocal:
		return "LOCAL"
	case SymLabel:
		return "LABEL"
	case SymProc:
		return "PROC"
	case SymBlock:
		return "BLOCK"
	case SymEnd:
		return "END"
	case SymMember:
		return "MEMBER"
	case SymTypedef:
		return "TYPEDEF"
	case SymFile:
		return "FILE_SYMBOL"
	case SymStaticProc:
		return "STATICPROC"
	case SymConstant:
		return "CONSTANT"
	default:
		return "UNKNOWN"
	}
}

// SymbolClass is the STABS storage-class tag (the `sc` packed field).
type SymbolClass uint32

const (
	ClassNil SymbolClass = iota
	ClassText
	ClassData
	ClassBss
	ClassRegister
	ClassAbs
	ClassUndefined
	ClassLocal
	ClassBits
	ClassDbx
	ClassRegImage
	ClassInfo
	ClassUserStruct
	ClassSdata
	ClassSbss
	ClassRdata
	ClassVar
	ClassCommon
	ClassScommon
	ClassVarRegister
	ClassVariant
	ClassSundefined
	ClassInit
	ClassBasedVar
	ClassXdata
	ClassPdata
	ClassFini
	ClassNongp
)
