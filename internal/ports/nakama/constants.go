package nakama

const (
	// RpcCreateDuel is the Nakama RPC id clients call to open a duel against the computer.
	RpcCreateDuel = "create_duel"

	// MatchNameTrumpDuel is the authoritative match handler name registered with Nakama.
	MatchNameTrumpDuel = "trumpduel_match"

	// RejoinGraceSeconds is how long a duel waits for its human to come back.
	RejoinGraceSeconds = 30
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound          int64 = 1
	OpCoinCall            int64 = 2
	OpSetTrump            int64 = 3
	OpPlayCard            int64 = 4
	OpRequestComputerMove int64 = 5
	OpSetDifficulty       int64 = 6
	OpRestart             int64 = 7

	// Server -> Client
	OpState int64 = 101
	OpEvent int64 = 102
	OpError int64 = 103
)

// Error codes carried by OpError payloads.
const (
	ErrCodeBadRequest = 400
	ErrCodeForbidden  = 403
	ErrCodeConflict   = 409
)
