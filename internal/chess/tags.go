package chess

// PGN tag names written on export.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	SetupTag       = "SetUp"
	FENTag         = "FEN"
	PlyCountTag    = "PlyCount"
	TerminationTag = "Termination"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Result tokens used in the Result tag and at the end of movetext.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultInProgress = "*"
)

// ResultFor returns the PGN result token for a game state. The loser of a
// checkmate is the side to move.
func ResultFor(state GameState, toMove Colour) string {
	switch state {
	case Checkmate:
		if toMove == White {
			return ResultBlackWins
		}
		return ResultWhiteWins
	case Draw:
		return ResultDraw
	default:
		return ResultInProgress
	}
}
