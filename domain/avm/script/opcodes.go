// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

// These constants are the values of the official opcodes used on the wire.
const (
	Op0         = 0x00 // push an empty byte string
	OpData1     = 0x01
	OpData75    = 0x4b
	OpPushData1 = 0x4c
	OpPushData2 = 0x4d
	OpPushData4 = 0x4e
	Op1Negate   = 0x4f
	OpReserved  = 0x50
	Op1         = 0x51
	Op2         = 0x52
	Op3         = 0x53
	Op4         = 0x54
	Op5         = 0x55
	Op6         = 0x56
	Op7         = 0x57
	Op8         = 0x58
	Op9         = 0x59
	Op10        = 0x5a
	Op11        = 0x5b
	Op12        = 0x5c
	Op13        = 0x5d
	Op14        = 0x5e
	Op15        = 0x5f
	Op16        = 0x60

	// Control.
	OpNop      = 0x61
	OpVer      = 0x62
	OpIf       = 0x63
	OpNotIf    = 0x64
	OpVerIf    = 0x65
	OpVerNotIf = 0x66
	OpElse     = 0x67
	OpEndIf    = 0x68
	OpVerify   = 0x69
	OpReturn   = 0x6a

	// Stack.
	OpToAltStack   = 0x6b
	OpFromAltStack = 0x6c
	Op2Drop        = 0x6d
	Op2Dup         = 0x6e
	Op3Dup         = 0x6f
	Op2Over        = 0x70
	Op2Rot         = 0x71
	Op2Swap        = 0x72
	OpIfDup        = 0x73
	OpDepth        = 0x74
	OpDrop         = 0x75
	OpDup          = 0x76
	OpNip          = 0x77
	OpOver         = 0x78
	OpPick         = 0x79
	OpRoll         = 0x7a
	OpRot          = 0x7b
	OpSwap         = 0x7c
	OpTuck         = 0x7d

	// Byte string operations.
	OpCat     = 0x7e
	OpSplit   = 0x7f
	OpNum2Bin = 0x80
	OpBin2Num = 0x81
	OpSize    = 0x82

	// Bitwise logic.
	OpInvert      = 0x83
	OpAnd         = 0x84
	OpOr          = 0x85
	OpXor         = 0x86
	OpEqual       = 0x87
	OpEqualVerify = 0x88
	OpReserved1   = 0x89
	OpReserved2   = 0x8a

	// Numeric.
	Op1Add               = 0x8b
	Op1Sub               = 0x8c
	Op2Mul               = 0x8d // disabled
	Op2Div               = 0x8e // disabled
	OpNegate             = 0x8f
	OpAbs                = 0x90
	OpNot                = 0x91
	Op0NotEqual          = 0x92
	OpAdd                = 0x93
	OpSub                = 0x94
	OpMul                = 0x95
	OpDiv                = 0x96
	OpMod                = 0x97
	OpLShift             = 0x98
	OpRShift             = 0x99
	OpBoolAnd            = 0x9a
	OpBoolOr             = 0x9b
	OpNumEqual           = 0x9c
	OpNumEqualVerify     = 0x9d
	OpNumNotEqual        = 0x9e
	OpLessThan           = 0x9f
	OpGreaterThan        = 0xa0
	OpLessThanOrEqual    = 0xa1
	OpGreaterThanOrEqual = 0xa2
	OpMin                = 0xa3
	OpMax                = 0xa4
	OpWithin             = 0xa5

	// Crypto.
	OpRipemd160 = 0xa6
	OpSha1      = 0xa7
	OpSha256    = 0xa8
	OpHash160   = 0xa9
	OpHash256   = 0xaa

	// Signature checking opcodes of the host chain; not part of this VM.
	OpCodeSeparator       = 0xab
	OpCheckSig            = 0xac
	OpCheckSigVerify      = 0xad
	OpCheckMultiSig       = 0xae
	OpCheckMultiSigVerify = 0xaf

	// Expansion.
	OpNop1                = 0xb0
	OpCheckLockTimeVerify = 0xb1
	OpCheckSequenceVerify = 0xb2
	OpNop4                = 0xb3
	OpNop5                = 0xb4
	OpNop6                = 0xb5
	OpNop7                = 0xb6
	OpNop8                = 0xb7
	OpNop9                = 0xb8
	OpNop10               = 0xb9

	OpCheckDataSig       = 0xba
	OpCheckDataSigVerify = 0xbb
	OpReverseBytes       = 0xbc

	// Authorization.
	OpCheckAuthSig       = 0xc0
	OpCheckAuthSigVerify = 0xc1

	// Native introspection.
	OpTxVersion           = 0xc2
	OpTxInputCount        = 0xc3
	OpTxOutputCount       = 0xc4
	OpTxLockTime          = 0xc5
	OpOutpointTxHash      = 0xc8
	OpOutpointIndex       = 0xc9
	OpInputBytecode       = 0xca
	OpInputSequenceNumber = 0xcb
	OpOutputValue         = 0xcd
	OpOutputBytecode      = 0xce

	// Token table storage.
	OpNftPut          = 0xd1
	OpFtBalanceAdd    = 0xd3
	OpKvExists        = 0xed
	OpKvGet           = 0xef
	OpKvPut           = 0xf0
	OpKvDelete        = 0xf1
	OpFtWithdraw      = 0xf2
	OpNftWithdraw     = 0xf3
	OpFtBalance       = 0xf4
	OpFtCount         = 0xf6
	OpFtItem          = 0xf7
	OpNftExists       = 0xf8
	OpNftCount        = 0xf9
	OpNftItem         = 0xfa
	OpGetBlockInfo    = 0xfb
	OpDecodeBlockInfo = 0xfc
	OpHashFn          = 0xfd
)

// opcodeNames maps opcode values to their canonical names. Unnamed values
// disassemble through OpcodeName as OP_UNKNOWNxxx.
var opcodeNames = map[byte]string{
	Op0:                   "OP_0",
	OpPushData1:           "OP_PUSHDATA1",
	OpPushData2:           "OP_PUSHDATA2",
	OpPushData4:           "OP_PUSHDATA4",
	Op1Negate:             "OP_1NEGATE",
	OpReserved:            "OP_RESERVED",
	Op1:                   "OP_1",
	Op2:                   "OP_2",
	Op3:                   "OP_3",
	Op4:                   "OP_4",
	Op5:                   "OP_5",
	Op6:                   "OP_6",
	Op7:                   "OP_7",
	Op8:                   "OP_8",
	Op9:                   "OP_9",
	Op10:                  "OP_10",
	Op11:                  "OP_11",
	Op12:                  "OP_12",
	Op13:                  "OP_13",
	Op14:                  "OP_14",
	Op15:                  "OP_15",
	Op16:                  "OP_16",
	OpNop:                 "OP_NOP",
	OpVer:                 "OP_VER",
	OpIf:                  "OP_IF",
	OpNotIf:               "OP_NOTIF",
	OpVerIf:               "OP_VERIF",
	OpVerNotIf:            "OP_VERNOTIF",
	OpElse:                "OP_ELSE",
	OpEndIf:               "OP_ENDIF",
	OpVerify:              "OP_VERIFY",
	OpReturn:              "OP_RETURN",
	OpToAltStack:          "OP_TOALTSTACK",
	OpFromAltStack:        "OP_FROMALTSTACK",
	Op2Drop:               "OP_2DROP",
	Op2Dup:                "OP_2DUP",
	Op3Dup:                "OP_3DUP",
	Op2Over:               "OP_2OVER",
	Op2Rot:                "OP_2ROT",
	Op2Swap:               "OP_2SWAP",
	OpIfDup:               "OP_IFDUP",
	OpDepth:               "OP_DEPTH",
	OpDrop:                "OP_DROP",
	OpDup:                 "OP_DUP",
	OpNip:                 "OP_NIP",
	OpOver:                "OP_OVER",
	OpPick:                "OP_PICK",
	OpRoll:                "OP_ROLL",
	OpRot:                 "OP_ROT",
	OpSwap:                "OP_SWAP",
	OpTuck:                "OP_TUCK",
	OpCat:                 "OP_CAT",
	OpSplit:               "OP_SPLIT",
	OpNum2Bin:             "OP_NUM2BIN",
	OpBin2Num:             "OP_BIN2NUM",
	OpSize:                "OP_SIZE",
	OpInvert:              "OP_INVERT",
	OpAnd:                 "OP_AND",
	OpOr:                  "OP_OR",
	OpXor:                 "OP_XOR",
	OpEqual:               "OP_EQUAL",
	OpEqualVerify:         "OP_EQUALVERIFY",
	OpReserved1:           "OP_RESERVED1",
	OpReserved2:           "OP_RESERVED2",
	Op1Add:                "OP_1ADD",
	Op1Sub:                "OP_1SUB",
	Op2Mul:                "OP_2MUL",
	Op2Div:                "OP_2DIV",
	OpNegate:              "OP_NEGATE",
	OpAbs:                 "OP_ABS",
	OpNot:                 "OP_NOT",
	Op0NotEqual:           "OP_0NOTEQUAL",
	OpAdd:                 "OP_ADD",
	OpSub:                 "OP_SUB",
	OpMul:                 "OP_MUL",
	OpDiv:                 "OP_DIV",
	OpMod:                 "OP_MOD",
	OpLShift:              "OP_LSHIFT",
	OpRShift:              "OP_RSHIFT",
	OpBoolAnd:             "OP_BOOLAND",
	OpBoolOr:              "OP_BOOLOR",
	OpNumEqual:            "OP_NUMEQUAL",
	OpNumEqualVerify:      "OP_NUMEQUALVERIFY",
	OpNumNotEqual:         "OP_NUMNOTEQUAL",
	OpLessThan:            "OP_LESSTHAN",
	OpGreaterThan:         "OP_GREATERTHAN",
	OpLessThanOrEqual:     "OP_LESSTHANOREQUAL",
	OpGreaterThanOrEqual:  "OP_GREATERTHANOREQUAL",
	OpMin:                 "OP_MIN",
	OpMax:                 "OP_MAX",
	OpWithin:              "OP_WITHIN",
	OpRipemd160:           "OP_RIPEMD160",
	OpSha1:                "OP_SHA1",
	OpSha256:              "OP_SHA256",
	OpHash160:             "OP_HASH160",
	OpHash256:             "OP_HASH256",
	OpCodeSeparator:       "OP_CODESEPARATOR",
	OpCheckSig:            "OP_CHECKSIG",
	OpCheckSigVerify:      "OP_CHECKSIGVERIFY",
	OpCheckMultiSig:       "OP_CHECKMULTISIG",
	OpCheckMultiSigVerify: "OP_CHECKMULTISIGVERIFY",
	OpNop1:                "OP_NOP1",
	OpCheckLockTimeVerify: "OP_CHECKLOCKTIMEVERIFY",
	OpCheckSequenceVerify: "OP_CHECKSEQUENCEVERIFY",
	OpNop4:                "OP_NOP4",
	OpNop5:                "OP_NOP5",
	OpNop6:                "OP_NOP6",
	OpNop7:                "OP_NOP7",
	OpNop8:                "OP_NOP8",
	OpNop9:                "OP_NOP9",
	OpNop10:               "OP_NOP10",
	OpCheckDataSig:        "OP_CHECKDATASIG",
	OpCheckDataSigVerify:  "OP_CHECKDATASIGVERIFY",
	OpReverseBytes:        "OP_REVERSEBYTES",
	OpCheckAuthSig:        "OP_CHECKAUTHSIG",
	OpCheckAuthSigVerify:  "OP_CHECKAUTHSIGVERIFY",
	OpTxVersion:           "OP_TXVERSION",
	OpTxInputCount:        "OP_TXINPUTCOUNT",
	OpTxOutputCount:       "OP_TXOUTPUTCOUNT",
	OpTxLockTime:          "OP_TXLOCKTIME",
	OpOutpointTxHash:      "OP_OUTPOINTTXHASH",
	OpOutpointIndex:       "OP_OUTPOINTINDEX",
	OpInputBytecode:       "OP_INPUTBYTECODE",
	OpInputSequenceNumber: "OP_INPUTSEQUENCENUMBER",
	OpOutputValue:         "OP_OUTPUTVALUE",
	OpOutputBytecode:      "OP_OUTPUTBYTECODE",
	OpNftPut:              "OP_NFT_PUT",
	OpFtBalanceAdd:        "OP_FT_BALANCE_ADD",
	OpKvExists:            "OP_KV_EXISTS",
	OpKvGet:               "OP_KV_GET",
	OpKvPut:               "OP_KV_PUT",
	OpKvDelete:            "OP_KV_DELETE",
	OpFtWithdraw:          "OP_FT_WITHDRAW",
	OpNftWithdraw:         "OP_NFT_WITHDRAW",
	OpFtBalance:           "OP_FT_BALANCE",
	OpFtCount:             "OP_FT_COUNT",
	OpFtItem:              "OP_FT_ITEM",
	OpNftExists:           "OP_NFT_EXISTS",
	OpNftCount:            "OP_NFT_COUNT",
	OpNftItem:             "OP_NFT_ITEM",
	OpGetBlockInfo:        "OP_GETBLOCKINFO",
	OpDecodeBlockInfo:     "OP_DECODEBLOCKINFO",
	OpHashFn:              "OP_HASH_FN",
}
